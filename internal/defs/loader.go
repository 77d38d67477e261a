// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	towersFile  = "towers.json"
	enemiesFile = "enemies.json"
)

//go:embed data/towers.json data/enemies.json
var builtin embed.FS

// ParseCatalog decodes keyed JSON collections of tower and enemy definitions.
func ParseCatalog(towersJSON, enemiesJSON []byte) (*Catalog, error) {
	var towers map[string]TowerDefinition
	if err := json.Unmarshal(towersJSON, &towers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	var enemies map[string]EnemyDefinition
	if err := json.Unmarshal(enemiesJSON, &enemies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	return NewCatalog(towers, enemies)
}

// LoadCatalog reads towers.json and enemies.json from dir.
func LoadCatalog(dir string) (*Catalog, error) {
	towersJSON, err := os.ReadFile(filepath.Join(dir, towersFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	enemiesJSON, err := os.ReadFile(filepath.Join(dir, enemiesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseCatalog(towersJSON, enemiesJSON)
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	towersJSON, err := builtin.ReadFile("data/" + towersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin tower definitions: %w", err)
	}
	enemiesJSON, err := builtin.ReadFile("data/" + enemiesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin enemy definitions: %w", err)
	}
	return ParseCatalog(towersJSON, enemiesJSON)
}

// OpenCatalog loads the catalog from dir, or the builtin one when dir is empty.
func OpenCatalog(dir string) (*Catalog, error) {
	if dir == "" {
		return DefaultCatalog()
	}
	return LoadCatalog(dir)
}

// MustDefaultCatalog is DefaultCatalog for callers that cannot recover from a
// broken build.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
