// internal/app/tower_management.go
package app

import (
	"fmt"
	"math"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/internal/system"
	"cyber-tower-defense/internal/types"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

func validPosition(p component.Position) bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100 &&
		!math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// PlaceTower buys a tower and places it at pos (percent of the arena). A
// tower the budget cannot cover is rejected with ErrInsufficientBudget and
// nothing changes.
func (g *Game) PlaceTower(defID string, pos component.Position) (component.PlacedTower, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.placeTowerLocked(defID, pos)
}

func (g *Game) placeTowerLocked(defID string, pos component.Position) (component.PlacedTower, error) {
	def, err := g.Catalog.Tower(defID)
	if err != nil {
		return component.PlacedTower{}, err
	}
	if !validPosition(pos) {
		return component.PlacedTower{}, fmt.Errorf("%w: %.1f,%.1f", ErrInvalidPosition, pos.X, pos.Y)
	}

	if err := g.Ledger.Spend(def.Cost); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"tower":  def.ID,
			"cost":   def.Cost,
			"budget": g.Ledger.Budget(),
		}).Info("placement rejected")
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Data: event.PlacementRejection{Tower: def, Budget: g.Ledger.Budget()},
		})
		return component.PlacedTower{}, fmt.Errorf("place %s: %w", def.ID, err)
	}

	tower := system.CreatePlacedTower(def, g.ECS.NewTowerID(), pos)
	g.ECS.AddTower(tower)

	logger.Log.WithFields(logrus.Fields{
		"tower":       def.ID,
		"instance_id": tower.InstanceID,
		"budget":      g.Ledger.Budget(),
	}).Info("tower placed")
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tower})
	return *tower, nil
}

// PlaceTowerAtPixel is PlaceTower for a point on the render surface.
func (g *Game) PlaceTowerAtPixel(defID string, x, y float64) (component.PlacedTower, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.ECS.Arena.Valid() {
		return component.PlacedTower{}, ErrArenaUnknown
	}
	return g.placeTowerLocked(defID, g.ECS.Arena.FromPixel(x, y))
}

// PlaceSelected places the selected definition and clears the selection on
// success.
func (g *Game) PlaceSelected(pos component.Position) (component.PlacedTower, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selected == "" {
		return component.PlacedTower{}, ErrNoSelection
	}
	tower, err := g.placeTowerLocked(g.selected, pos)
	if err == nil {
		g.selected = ""
	}
	return tower, err
}

// PlaceSelectedAtPixel is PlaceSelected for a point on the render surface.
func (g *Game) PlaceSelectedAtPixel(x, y float64) (component.PlacedTower, error) {
	g.mu.Lock()
	arena := g.ECS.Arena
	g.mu.Unlock()
	if !arena.Valid() {
		return component.PlacedTower{}, ErrArenaUnknown
	}
	return g.PlaceSelected(arena.FromPixel(x, y))
}

// RemoveTower takes a tower out and refunds its full cost. Unknown ids are
// ignored and reported as false.
func (g *Game) RemoveTower(id types.InstanceID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeTowerLocked(id)
}

func (g *Game) removeTowerLocked(id types.InstanceID) bool {
	tower, ok := g.ECS.RemoveTower(id)
	if !ok {
		logger.Log.WithField("instance_id", id).Debug("remove: no such tower")
		return false
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: tower})
	return true
}

// TowerAtPixel finds the most recently placed tower whose hitbox contains the
// point.
func (g *Game) TowerAtPixel(x, y float64) (types.InstanceID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.towerAtPixelLocked(x, y)
}

func (g *Game) towerAtPixelLocked(x, y float64) (types.InstanceID, bool) {
	arena := g.ECS.Arena
	if !arena.Valid() {
		return 0, false
	}
	p := arena.FromPixel(x, y)
	towers := g.ECS.Towers
	for i := len(towers) - 1; i >= 0; i-- {
		if arena.Distance(towers[i].Position, p) <= config.TowerHitbox {
			return towers[i].InstanceID, true
		}
	}
	return 0, false
}

// RemoveTowerAtPixel removes the tower under the point, if any.
func (g *Game) RemoveTowerAtPixel(x, y float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.towerAtPixelLocked(x, y)
	if !ok {
		return false
	}
	return g.removeTowerLocked(id)
}

// MoveTower repositions a placed tower. Its stats and cooldown are kept.
func (g *Game) MoveTower(id types.InstanceID, pos component.Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !validPosition(pos) {
		return fmt.Errorf("%w: %.1f,%.1f", ErrInvalidPosition, pos.X, pos.Y)
	}
	towers := g.ECS.CloneTowers()
	for _, t := range towers {
		if t.InstanceID == id {
			t.Position = pos
			g.ECS.Towers = towers
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownInstance, id)
}

// SelectDefinition marks a tower definition for placement. An empty id
// clears the selection.
func (g *Game) SelectDefinition(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id == "" {
		g.selected = ""
		return nil
	}
	if _, err := g.Catalog.Tower(id); err != nil {
		return err
	}
	g.selected = id
	return nil
}

func (g *Game) Deselect() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selected = ""
}

// Selected returns the selected definition id, or "".
func (g *Game) Selected() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selected
}

// SpawnEnemy releases an enemy of a specific type immediately.
func (g *Game) SpawnEnemy(defID string) (types.InstanceID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	enemy, err := g.SpawnSystem.Spawn(defID)
	if err != nil {
		return 0, err
	}
	return enemy.InstanceID, nil
}
