package system

import (
	"fmt"
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/internal/utils"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpawnSystem releases one enemy per spawn cycle, drawn uniformly from the
// catalog.
type SpawnSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, catalog *defs.Catalog, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		catalog:         catalog,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update spawns a random enemy. It does nothing with an empty catalog.
func (s *SpawnSystem) Update(time.Time) {
	id := s.rng.Choose(s.catalog.EnemyIDs())
	if id == "" {
		return
	}
	if _, err := s.Spawn(id); err != nil {
		logger.Log.WithError(err).Error("spawn failed")
	}
}

// Spawn releases an enemy of the given type.
func (s *SpawnSystem) Spawn(defID string) (*component.SpawnedEnemy, error) {
	def, err := s.catalog.Enemy(defID)
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}

	enemy := CreateSpawnedEnemy(def, s.ecs.NewEnemyID(), s.rng)
	s.ecs.AddEnemy(enemy)
	s.ecs.RecordEncounter(def.ID)

	logger.Log.WithFields(logrus.Fields{
		"enemy":       def.ID,
		"instance_id": enemy.InstanceID,
		"waypoints":   len(enemy.Path),
	}).Debug("enemy spawned")
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
	return enemy, nil
}
