// internal/entity/ecs.go
package entity

import (
	"slices"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/types"
)

// ECS is the live session store. Towers and Enemies are kept in instance id
// order; every structural change installs a fresh slice, so a slice obtained
// before a change is never modified by it.
type ECS struct {
	NextTowerID types.InstanceID
	NextEnemyID types.InstanceID
	Towers      []*component.PlacedTower
	Enemies     []*component.SpawnedEnemy
	Encountered []string // enemy definition ids, in order of first spawn
	GameState   *component.GameState
	Arena       component.Arena
	Attacks     []component.Attack // hits of the last tick
}

func NewECS() *ECS {
	ecs := &ECS{}
	ecs.Reset()
	return ecs
}

// Reset clears every entity and restarts both id counters. The arena size is
// a property of the viewer and survives.
func (ecs *ECS) Reset() {
	ecs.NextTowerID = 1
	ecs.NextEnemyID = 1
	ecs.Towers = nil
	ecs.Enemies = nil
	ecs.Encountered = nil
	ecs.Attacks = nil
	ecs.GameState = &component.GameState{
		Phase:         component.Idle,
		NetworkHealth: config.InitialNetworkHealth,
	}
}

func (ecs *ECS) NewTowerID() types.InstanceID {
	id := ecs.NextTowerID
	ecs.NextTowerID++
	return id
}

func (ecs *ECS) NewEnemyID() types.InstanceID {
	id := ecs.NextEnemyID
	ecs.NextEnemyID++
	return id
}

func (ecs *ECS) AddTower(t *component.PlacedTower) {
	towers := slices.Clone(ecs.Towers)
	ecs.Towers = append(towers, t)
}

// RemoveTower takes the tower out of the live set.
func (ecs *ECS) RemoveTower(id types.InstanceID) (*component.PlacedTower, bool) {
	idx := slices.IndexFunc(ecs.Towers, func(t *component.PlacedTower) bool { return t.InstanceID == id })
	if idx < 0 {
		return nil, false
	}
	removed := ecs.Towers[idx]
	ecs.Towers = slices.Delete(slices.Clone(ecs.Towers), idx, idx+1)
	return removed, true
}

func (ecs *ECS) Tower(id types.InstanceID) (*component.PlacedTower, bool) {
	for _, t := range ecs.Towers {
		if t.InstanceID == id {
			return t, true
		}
	}
	return nil, false
}

func (ecs *ECS) AddEnemy(e *component.SpawnedEnemy) {
	enemies := slices.Clone(ecs.Enemies)
	ecs.Enemies = append(enemies, e)
}

// ReplaceEnemies installs a new enemy collection.
func (ecs *ECS) ReplaceEnemies(enemies []*component.SpawnedEnemy) {
	ecs.Enemies = enemies
}

// RecordEncounter notes an enemy type the first time it spawns.
func (ecs *ECS) RecordEncounter(defID string) {
	if slices.Contains(ecs.Encountered, defID) {
		return
	}
	ecs.Encountered = append(slices.Clone(ecs.Encountered), defID)
}

// ActiveEnemyTypes returns the distinct definition ids of live enemies in
// order of appearance.
func (ecs *ECS) ActiveEnemyTypes() []string {
	var ids []string
	for _, e := range ecs.Enemies {
		if e.Alive() && !slices.Contains(ids, e.ID) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// CloneTowers returns a fresh collection of tower copies for a system to
// mutate and install.
func (ecs *ECS) CloneTowers() []*component.PlacedTower {
	out := make([]*component.PlacedTower, len(ecs.Towers))
	for i, t := range ecs.Towers {
		c := *t
		out[i] = &c
	}
	return out
}

// CloneEnemies is CloneTowers for enemies.
func (ecs *ECS) CloneEnemies() []*component.SpawnedEnemy {
	out := make([]*component.SpawnedEnemy, len(ecs.Enemies))
	for i, e := range ecs.Enemies {
		out[i] = e.Clone()
	}
	return out
}
