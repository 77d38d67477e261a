package component

import (
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/types"
)

// SpawnedEnemy is an enemy definition travelling through the arena.
type SpawnedEnemy struct {
	defs.EnemyDefinition
	InstanceID types.InstanceID
	Position   Position
	Health     float64    // [0, 100]
	Path       []Position // Path[0] is the waypoint last reached
	Effects    []Effect
	ReachedEnd bool // sticky once set
	Defeated   bool // the kill has been resolved and rewarded
}

// Alive reports whether the enemy still takes part in combat.
func (e *SpawnedEnemy) Alive() bool {
	return e.Health > 0
}

// TakeDamage reduces health, clamping at zero.
func (e *SpawnedEnemy) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}

// AddEffect appends an effect; effects of the same kind coexist.
func (e *SpawnedEnemy) AddEffect(effect Effect) {
	if effect == nil {
		return
	}
	e.Effects = append(e.Effects, effect)
}

// Clone returns a copy that shares no slices with e.
func (e *SpawnedEnemy) Clone() *SpawnedEnemy {
	c := *e
	c.Path = append([]Position(nil), e.Path...)
	c.Effects = append([]Effect(nil), e.Effects...)
	c.Weaknesses = append([]string(nil), e.Weaknesses...)
	return &c
}
