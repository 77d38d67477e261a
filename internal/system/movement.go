package system

import (
	"math"
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/pkg/logger"
	"cyber-tower-defense/pkg/utils"

	"github.com/sirupsen/logrus"
)

// MovementSystem advances enemies along their paths, applies their effects,
// detects breaches and lets nearby towers drift together.
type MovementSystem struct {
	ecs             *entity.ECS
	effects         *StatusEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, effects *StatusEffectSystem, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, effects: effects, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(now time.Time) {
	s.updateEnemies(now)
	s.driftTowers()
}

// updateEnemies installs the next enemy collection. Dead enemies whose kill
// has been resolved are dropped; dead enemies still awaiting resolution are
// carried over untouched.
func (s *MovementSystem) updateEnemies(now time.Time) {
	next := make([]*component.SpawnedEnemy, 0, len(s.ecs.Enemies))
	var breached []*component.SpawnedEnemy

	for _, enemy := range s.ecs.Enemies {
		if !enemy.Alive() {
			if !enemy.Defeated {
				next = append(next, enemy.Clone())
			}
			continue
		}

		enemy = enemy.Clone()
		s.effects.Apply(enemy, now)
		if enemy.Alive() {
			step(enemy, config.EnemyBaseSpeed*SpeedMultiplier(enemy.Effects))
			if !enemy.ReachedEnd && enemy.Position.Y >= config.DangerZoneY {
				enemy.ReachedEnd = true
				breached = append(breached, enemy)
			}
		}
		next = append(next, enemy)
	}

	s.ecs.ReplaceEnemies(next)

	for _, enemy := range breached {
		logger.Log.WithFields(logrus.Fields{
			"enemy":       enemy.ID,
			"instance_id": enemy.InstanceID,
			"severity":    enemy.Severity,
		}).Info("network breached")
		s.eventDispatcher.Dispatch(event.Event{Type: event.NetworkBreached, Data: enemy})
	}
}

// step moves the enemy toward Path[1]. When the waypoint is closer than one
// step the enemy snaps through it: the waypoint is consumed and the position
// is left for the next tick.
func step(enemy *component.SpawnedEnemy, speed float64) {
	if len(enemy.Path) < 2 || speed <= 0 {
		return
	}
	target := enemy.Path[1]
	dx := target.X - enemy.Position.X
	dy := target.Y - enemy.Position.Y
	dist := math.Hypot(dx, dy)

	if dist < speed {
		enemy.Path = enemy.Path[1:]
		return
	}
	enemy.Position.X += dx / dist * speed
	enemy.Position.Y += dy / dist * speed
}

// driftTowers moves each tower one step toward its nearest neighbour inside
// half its own range. All moves are computed from the positions at the start
// of the pass; a tower takes at most half of the remaining gap above the
// minimum separation since its neighbour may be closing in as well.
func (s *MovementSystem) driftTowers() {
	arena := s.ecs.Arena
	if !arena.Valid() || len(s.ecs.Towers) < 2 {
		return
	}

	current := s.ecs.Towers
	next := s.ecs.CloneTowers()
	moved := false

	for i, tower := range current {
		nearest := -1
		best := math.Inf(1)
		for j, other := range current {
			if i == j {
				continue
			}
			d := arena.Distance(tower.Position, other.Position)
			if d < tower.Range/2 && d < best {
				nearest, best = j, d
			}
		}
		if nearest < 0 || best <= config.MinTowerSeparation {
			continue
		}

		stepLen := math.Min(config.DriftStep, (best-config.MinTowerSeparation)/2)
		x, y := arena.ToPixel(tower.Position)
		tx, ty := arena.ToPixel(current[nearest].Position)
		nx, ny := utils.MoveToward(x, y, tx, ty, stepLen)
		next[i].Position = arena.FromPixel(nx, ny)
		moved = true
	}

	if moved {
		s.ecs.Towers = next
	}
}
