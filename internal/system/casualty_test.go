package system

import "testing"

func TestCasualtiesLeaveEarlierCollectionUntouched(t *testing.T) {
	w := setupWorld(0)
	dead := w.addEnemy(malwareDef, 50, 50)
	dead.Health = 0
	w.addEnemy(sqliDef, 20, 20)
	before := w.ecs.Enemies

	if n := w.casualties.Update(epoch); n != 1 {
		t.Fatalf("killed = %d, want 1", n)
	}
	if before[0].Defeated {
		t.Error("casualty pass modified an enemy of the previous collection")
	}
	if !w.enemy(0).Defeated {
		t.Error("dead enemy not marked defeated in the live collection")
	}
	if w.enemy(1) != before[1] {
		t.Error("living enemy was copied")
	}
	if w.ledger.Budget() != 25_000 {
		t.Errorf("budget = %d, want 25000", w.ledger.Budget())
	}
}

func TestCasualtiesWithoutDeathsKeepCollection(t *testing.T) {
	w := setupWorld(0)
	w.addEnemy(sqliDef, 20, 20)
	before := w.ecs.Enemies

	if n := w.casualties.Update(epoch); n != 0 {
		t.Fatalf("killed = %d, want 0", n)
	}
	if &w.ecs.Enemies[0] != &before[0] {
		t.Error("collection replaced although nobody died")
	}
	if n := w.casualties.Update(epoch); n != 0 {
		t.Errorf("second pass killed %d", n)
	}
}
