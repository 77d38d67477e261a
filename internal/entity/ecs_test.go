package entity

import (
	"testing"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
)

func TestIDsAreMonotonicAndReset(t *testing.T) {
	ecs := NewECS()
	if id := ecs.NewTowerID(); id != 1 {
		t.Fatalf("first tower id = %d, want 1", id)
	}
	if id := ecs.NewTowerID(); id != 2 {
		t.Fatalf("second tower id = %d, want 2", id)
	}
	if id := ecs.NewEnemyID(); id != 1 {
		t.Fatalf("enemy counter shares tower counter: %d", id)
	}

	ecs.Reset()
	if id := ecs.NewTowerID(); id != 1 {
		t.Errorf("tower id after reset = %d, want 1", id)
	}
	if id := ecs.NewEnemyID(); id != 1 {
		t.Errorf("enemy id after reset = %d, want 1", id)
	}
}

func TestRemoveTowerKeepsEarlierSliceIntact(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 3; i++ {
		ecs.AddTower(&component.PlacedTower{InstanceID: ecs.NewTowerID()})
	}
	before := ecs.Towers

	removed, ok := ecs.RemoveTower(2)
	if !ok || removed.InstanceID != 2 {
		t.Fatalf("RemoveTower(2) = %v, %v", removed, ok)
	}
	if len(ecs.Towers) != 2 || ecs.Towers[1].InstanceID != 3 {
		t.Errorf("towers after removal: %d", len(ecs.Towers))
	}
	if len(before) != 3 || before[1].InstanceID != 2 {
		t.Error("removal modified a previously obtained slice")
	}
	if _, ok := ecs.RemoveTower(2); ok {
		t.Error("removing twice succeeded")
	}
}

func TestEncounteredAndActive(t *testing.T) {
	ecs := NewECS()
	ecs.RecordEncounter("ddos")
	ecs.RecordEncounter("mitm")
	ecs.RecordEncounter("ddos")
	if len(ecs.Encountered) != 2 {
		t.Errorf("Encountered = %v", ecs.Encountered)
	}

	ecs.AddEnemy(&component.SpawnedEnemy{EnemyDefinition: defs.EnemyDefinition{ID: "ddos"}, Health: 10})
	ecs.AddEnemy(&component.SpawnedEnemy{EnemyDefinition: defs.EnemyDefinition{ID: "mitm"}, Health: 0})
	ecs.AddEnemy(&component.SpawnedEnemy{EnemyDefinition: defs.EnemyDefinition{ID: "ddos"}, Health: 50})
	active := ecs.ActiveEnemyTypes()
	if len(active) != 1 || active[0] != "ddos" {
		t.Errorf("ActiveEnemyTypes = %v, want [ddos]", active)
	}
}

func TestResetRestoresGameState(t *testing.T) {
	ecs := NewECS()
	ecs.GameState.Phase = component.GameOver
	ecs.GameState.NetworkHealth = 0
	ecs.Arena = component.Arena{Width: 10, Height: 10}
	ecs.Reset()
	if ecs.GameState.Phase != component.Idle || ecs.GameState.NetworkHealth != 100 {
		t.Errorf("GameState after reset = %+v", ecs.GameState)
	}
	if !ecs.Arena.Valid() {
		t.Error("reset dropped the arena size")
	}
}

func TestCloneCollectionsAreIndependent(t *testing.T) {
	ecs := NewECS()
	ecs.AddTower(&component.PlacedTower{InstanceID: 1, Range: 100})
	ecs.AddEnemy(&component.SpawnedEnemy{InstanceID: 1, Health: 100})

	towers := ecs.CloneTowers()
	enemies := ecs.CloneEnemies()
	towers[0].Range = 1
	enemies[0].Health = 1

	if ecs.Towers[0].Range != 100 || ecs.Enemies[0].Health != 100 {
		t.Error("clones alias the live collections")
	}
}
