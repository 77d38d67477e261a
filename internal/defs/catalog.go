package defs

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownTower = errors.New("unknown tower definition")
	ErrUnknownEnemy = errors.New("unknown enemy definition")
)

// Catalog is the read-only reference data for one session: every tower and
// enemy definition keyed by id.
type Catalog struct {
	towers   map[string]TowerDefinition
	enemies  map[string]EnemyDefinition
	towerIDs []string
	enemyIDs []string
}

// NewCatalog builds a catalog from keyed collections. A definition's ID is
// taken from its key when empty; a mismatching ID is an error, as is a
// counter or weakness naming a definition the catalog does not hold.
func NewCatalog(towers map[string]TowerDefinition, enemies map[string]EnemyDefinition) (*Catalog, error) {
	c := &Catalog{
		towers:  make(map[string]TowerDefinition, len(towers)),
		enemies: make(map[string]EnemyDefinition, len(enemies)),
	}

	for key, def := range towers {
		if def.ID == "" {
			def.ID = key
		}
		if def.ID != key {
			return nil, fmt.Errorf("tower %q: id %q does not match its key", key, def.ID)
		}
		switch def.AttackType {
		case "":
			def.AttackType = AttackSingle
		case AttackSingle, AttackArea:
		default:
			return nil, fmt.Errorf("tower %q: unknown attack type %q", key, def.AttackType)
		}
		if def.Cost < 0 {
			return nil, fmt.Errorf("tower %q: negative cost %d", key, def.Cost)
		}
		c.towers[key] = def
		c.towerIDs = append(c.towerIDs, key)
	}

	for key, def := range enemies {
		if def.ID == "" {
			def.ID = key
		}
		if def.ID != key {
			return nil, fmt.Errorf("enemy %q: id %q does not match its key", key, def.ID)
		}
		c.enemies[key] = def
		c.enemyIDs = append(c.enemyIDs, key)
	}

	// counters и weaknesses должны ссылаться на существующие определения
	for key, def := range c.towers {
		for _, id := range def.Counters {
			if _, ok := c.enemies[id]; !ok {
				return nil, fmt.Errorf("tower %q: counters %q: %w", key, id, ErrUnknownEnemy)
			}
		}
	}
	for key, def := range c.enemies {
		for _, id := range def.Weaknesses {
			if _, ok := c.towers[id]; !ok {
				return nil, fmt.Errorf("enemy %q: weakness %q: %w", key, id, ErrUnknownTower)
			}
		}
	}

	sort.Strings(c.towerIDs)
	sort.Strings(c.enemyIDs)
	return c, nil
}

// Tower looks up a tower definition.
func (c *Catalog) Tower(id string) (TowerDefinition, error) {
	def, ok := c.towers[id]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTower, id)
	}
	return def, nil
}

// Enemy looks up an enemy definition.
func (c *Catalog) Enemy(id string) (EnemyDefinition, error) {
	def, ok := c.enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return def, nil
}

// TowerIDs returns all tower ids in sorted order.
func (c *Catalog) TowerIDs() []string {
	return append([]string(nil), c.towerIDs...)
}

// EnemyIDs returns all enemy ids in sorted order. Spawning draws from this
// order so a fixed seed yields a fixed sequence.
func (c *Catalog) EnemyIDs() []string {
	return append([]string(nil), c.enemyIDs...)
}

// Towers returns the tower definitions in id order.
func (c *Catalog) Towers() []TowerDefinition {
	out := make([]TowerDefinition, 0, len(c.towerIDs))
	for _, id := range c.towerIDs {
		out = append(out, c.towers[id])
	}
	return out
}

// Enemies returns the enemy definitions in id order.
func (c *Catalog) Enemies() []EnemyDefinition {
	out := make([]EnemyDefinition, 0, len(c.enemyIDs))
	for _, id := range c.enemyIDs {
		out = append(out, c.enemies[id])
	}
	return out
}
