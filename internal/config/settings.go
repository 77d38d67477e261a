package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs read from the environment. Defaults match
// the constants above.
type Settings struct {
	TickInterval  time.Duration `env:"CTD_TICK_INTERVAL" envDefault:"150ms"`
	SpawnInterval time.Duration `env:"CTD_SPAWN_INTERVAL" envDefault:"6s"`
	InitialBudget int64         `env:"CTD_INITIAL_BUDGET" envDefault:"5300000"`
	Seed          int64         `env:"CTD_SEED" envDefault:"0"`
	ListenAddr    string        `env:"CTD_LISTEN_ADDR" envDefault:":8080"`
	CatalogDir    string        `env:"CTD_CATALOG_DIR"`
	ArenaWidth    float64       `env:"CTD_ARENA_WIDTH" envDefault:"1200"`
	ArenaHeight   float64       `env:"CTD_ARENA_HEIGHT" envDefault:"790"`
	LogLevel      string        `env:"CTD_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"CTD_LOG_FORMAT" envDefault:"text"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TickInterval:  TickInterval,
		SpawnInterval: SpawnInterval,
		InitialBudget: InitialBudget,
		ListenAddr:    ":8080",
		ArenaWidth:    ArenaWidth,
		ArenaHeight:   ArenaHeight,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Settings from the environment and validates them.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the engine cannot run with.
func (s Settings) Validate() error {
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", s.TickInterval)
	}
	if s.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %s", s.SpawnInterval)
	}
	if s.InitialBudget <= 0 {
		return fmt.Errorf("initial budget must be positive, got %d", s.InitialBudget)
	}
	return nil
}
