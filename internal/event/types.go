// internal/event/types.go
package event

import (
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
)

const (
	TowerPlaced       EventType = "TowerPlaced"       // *component.PlacedTower
	TowerRemoved      EventType = "TowerRemoved"      // *component.PlacedTower
	PlacementRejected EventType = "PlacementRejected" // PlacementRejection
	EnemySpawned      EventType = "EnemySpawned"      // *component.SpawnedEnemy
	EnemyKilled       EventType = "EnemyKilled"       // *component.SpawnedEnemy
	NetworkBreached   EventType = "NetworkBreached"   // *component.SpawnedEnemy
	GameOver          EventType = "GameOver"          // *component.SpawnedEnemy, the breacher
	PhaseChanged      EventType = "PhaseChanged"      // PhaseChange
)

// PlacementRejection describes a tower that could not be afforded.
type PlacementRejection struct {
	Tower  defs.TowerDefinition
	Budget int64
}

// PhaseChange is emitted on every session state transition.
type PhaseChange struct {
	From, To component.Phase
}
