package system

import (
	"errors"
	"fmt"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrInsufficientBudget is returned when a tower costs more than the budget.
var ErrInsufficientBudget = errors.New("insufficient budget")

// Ledger tracks the session budget. Placement spends through Spend; refunds
// and kill rewards arrive as events.
type Ledger struct {
	initial int64
	budget  int64
}

func NewLedger(initial int64) *Ledger {
	return &Ledger{initial: initial, budget: initial}
}

func (l *Ledger) Budget() int64  { return l.budget }
func (l *Ledger) Initial() int64 { return l.initial }

// Spend deducts cost, or leaves the budget untouched and fails if it would go
// negative.
func (l *Ledger) Spend(cost int64) error {
	if cost > l.budget {
		return fmt.Errorf("%w: cost %d exceeds budget %d", ErrInsufficientBudget, cost, l.budget)
	}
	l.budget -= cost
	return nil
}

func (l *Ledger) Refund(amount int64) {
	l.budget += amount
}

func (l *Ledger) Reward(amount int64) {
	l.budget += amount
}

// Reset restores the initial budget.
func (l *Ledger) Reset() {
	l.budget = l.initial
}

func (l *Ledger) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerRemoved:
		tower, ok := e.Data.(*component.PlacedTower)
		if !ok {
			return
		}
		l.Refund(tower.Cost)
		logger.Log.WithFields(logrus.Fields{
			"tower":  tower.ID,
			"refund": tower.Cost,
			"budget": l.budget,
		}).Info("tower refunded")
	case event.EnemyKilled:
		enemy, ok := e.Data.(*component.SpawnedEnemy)
		if !ok {
			return
		}
		reward := enemy.Severity.KillReward()
		l.Reward(reward)
		logger.Log.WithFields(logrus.Fields{
			"enemy":  enemy.ID,
			"reward": reward,
			"budget": l.budget,
		}).Info("enemy neutralised")
	}
}
