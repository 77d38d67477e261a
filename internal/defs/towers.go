// internal/defs/towers.go
package defs

import "slices"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Effectiveness string     `json:"effectiveness"`
	Counters      []string   `json:"counters"`
	Color         string     `json:"color"`
	Symbol        string     `json:"symbol"`
	Effects       []string   `json:"effects"`
	AttackType    AttackType `json:"attackType"`
	Cost          int64      `json:"cost"` // annual cost
}

// CountersEnemy reports whether the tower lists the enemy as a direct counter.
func (t TowerDefinition) CountersEnemy(enemyID string) bool {
	return slices.Contains(t.Counters, enemyID)
}

// HasEffect reports whether the tower applies the given effect tag.
func (t TowerDefinition) HasEffect(tag string) bool {
	return slices.Contains(t.Effects, tag)
}
