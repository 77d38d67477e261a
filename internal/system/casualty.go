package system

import (
	"slices"
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/internal/event"
)

// CasualtySystem is the single place where deaths are recognised. It runs
// last in a tick, after combat and burn damage have both settled, so an
// enemy is rewarded exactly once whichever of them killed it.
type CasualtySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCasualtySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CasualtySystem {
	return &CasualtySystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update marks newly dead enemies as defeated and emits EnemyKilled for each.
// Marked enemies are copies installed in a fresh collection.
func (s *CasualtySystem) Update(time.Time) int {
	var (
		next   []*component.SpawnedEnemy
		killed []*component.SpawnedEnemy
	)
	for i, enemy := range s.ecs.Enemies {
		if enemy.Alive() || enemy.Defeated {
			continue
		}
		if next == nil {
			next = slices.Clone(s.ecs.Enemies)
		}
		enemy = enemy.Clone()
		enemy.Defeated = true
		next[i] = enemy
		killed = append(killed, enemy)
	}
	if next == nil {
		return 0
	}

	s.ecs.ReplaceEnemies(next)
	for _, enemy := range killed {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: enemy})
	}
	return len(killed)
}
