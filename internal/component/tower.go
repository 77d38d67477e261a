// component/tower.go
package component

import (
	"time"

	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/types"
)

// PlacedTower is a tower definition instantiated in the arena. Range and
// Cooldown are derived once at placement.
type PlacedTower struct {
	defs.TowerDefinition
	InstanceID types.InstanceID
	Position   Position
	LastAttack time.Time // zero until the first successful attack
	Range      float64   // pixels
	Cooldown   time.Duration
}

// Ready reports whether the cooldown since the last attack has elapsed.
func (t *PlacedTower) Ready(now time.Time) bool {
	if t.LastAttack.IsZero() {
		return true
	}
	return now.Sub(t.LastAttack) >= t.Cooldown
}
