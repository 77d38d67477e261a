package system

import (
	"fmt"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/internal/interfaces"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// StateSystem owns the session phase and the network health.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.NetworkBreached, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.NetworkBreached {
		return
	}
	enemy, ok := e.Data.(*component.SpawnedEnemy)
	if !ok {
		return
	}
	s.applyBreach(enemy)
}

func (s *StateSystem) applyBreach(enemy *component.SpawnedEnemy) {
	gs := s.ecs.GameState
	gs.NetworkHealth -= enemy.Severity.BreachDamage()
	if gs.NetworkHealth < 0 {
		gs.NetworkHealth = 0
	}

	logger.Log.WithFields(logrus.Fields{
		"enemy":          enemy.ID,
		"network_health": gs.NetworkHealth,
	}).Warn("network health reduced")

	if gs.NetworkHealth <= 0 && gs.Phase != component.GameOver {
		s.enterGameOver(enemy)
	}
}

func (s *StateSystem) enterGameOver(breacher *component.SpawnedEnemy) {
	gs := s.ecs.GameState
	gs.Breacher = breacher.Clone()
	gs.Reason = fmt.Sprintf("Your network was breached by a %s", breacher.Name)
	s.SetPhase(component.GameOver)
	s.gameContext.HaltSimulation()

	logger.Log.WithFields(logrus.Fields{
		"enemy":  breacher.ID,
		"reason": gs.Reason,
	}).Warn("game over")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: gs.Breacher})
}

// SetPhase switches the phase and announces the change.
func (s *StateSystem) SetPhase(to component.Phase) {
	from := s.ecs.GameState.Phase
	if from == to {
		return
	}
	s.ecs.GameState.Phase = to
	logger.Log.WithFields(logrus.Fields{"from": from, "to": to}).Info("phase changed")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChange{From: from, To: to}})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
