// internal/component/visual.go
package component

import (
	"time"

	"cyber-tower-defense/internal/types"
)

// Attack records one tower hitting one enemy. The viewers draw these as
// short-lived beams.
type Attack struct {
	TowerID types.InstanceID
	EnemyID types.InstanceID
	From    Position
	To      Position
	Damage  float64
	At      time.Time
}
