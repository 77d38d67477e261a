// internal/defs/enemies.go
package defs

import "slices"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AttackType  string   `json:"attackType"`
	Weaknesses  []string `json:"weaknesses"`
	Severity    Severity `json:"severity"`
	Speed       string   `json:"speed"` // descriptive only; movement speed is global
	Color       string   `json:"color"`
	Symbol      string   `json:"symbol"`
}

// WeakTo reports whether the enemy lists the tower as one of its weaknesses.
func (e EnemyDefinition) WeakTo(towerID string) bool {
	return slices.Contains(e.Weaknesses, towerID)
}
