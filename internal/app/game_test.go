package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"cyber-tower-defense/internal/clock"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/internal/types"
	"cyber-tower-defense/pkg/logger"
)

func init() {
	logger.Silence()
}

var epoch = time.Unix(1_700_000_000, 0)

func setupGame(t *testing.T, budget int64) (*Game, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(epoch)
	g, err := NewGame(Options{
		Clock:         clk,
		Seed:          42,
		InitialBudget: budget,
		Arena:         component.Arena{Width: 1000, Height: 1000},
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, clk
}

// pinEnemy moves a live enemy onto a straight path starting at (x, y).
func pinEnemy(g *Game, id int, x, y float64) *component.SpawnedEnemy {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.ECS.Enemies {
		if int(e.InstanceID) == id {
			e.Position = component.Position{X: x, Y: y}
			e.Path = []component.Position{{X: x, Y: y}, {X: x, Y: 100}}
			return e
		}
	}
	return nil
}

func TestNewGameDefaults(t *testing.T) {
	g, _ := setupGame(t, 0)
	snap := g.Snapshot()
	if snap.Phase != component.Idle {
		t.Errorf("phase = %s, want idle", snap.Phase)
	}
	if snap.Budget != 5_300_000 || snap.NetworkHealth != 100 {
		t.Errorf("budget %d health %v", snap.Budget, snap.NetworkHealth)
	}
	if snap.SessionID == "" {
		t.Error("missing session id")
	}
}

func TestPlacementScenario(t *testing.T) {
	g, _ := setupGame(t, 1_000_000)

	tower, err := g.PlaceTower("firewall", component.Position{X: 50, Y: 50})
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if tower.InstanceID != 1 {
		t.Errorf("first tower id = %d", tower.InstanceID)
	}
	snap := g.Snapshot()
	if snap.Budget != 750_000 || len(snap.Towers) != 1 {
		t.Errorf("budget %d towers %d", snap.Budget, len(snap.Towers))
	}

	if !g.RemoveTower(tower.InstanceID) {
		t.Fatal("RemoveTower reported false")
	}
	snap = g.Snapshot()
	if snap.Budget != 1_000_000 || len(snap.Towers) != 0 {
		t.Errorf("after removal: budget %d towers %d", snap.Budget, len(snap.Towers))
	}
	if g.RemoveTower(tower.InstanceID) {
		t.Error("second removal reported true")
	}
}

func TestPlacementOverBudgetChangesNothing(t *testing.T) {
	g, _ := setupGame(t, 100_000)

	_, err := g.PlaceTower("ids", component.Position{X: 10, Y: 10})
	if !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("err = %v, want ErrInsufficientBudget", err)
	}
	snap := g.Snapshot()
	if snap.Budget != 100_000 || len(snap.Towers) != 0 {
		t.Errorf("rejected placement changed state: budget %d towers %d", snap.Budget, len(snap.Towers))
	}

	tower, err := g.PlaceTower("updates", component.Position{X: 10, Y: 10})
	if err != nil {
		t.Fatal(err)
	}
	if tower.InstanceID != 1 {
		t.Errorf("rejected placement consumed an id: got %d", tower.InstanceID)
	}
}

func TestPlacementValidation(t *testing.T) {
	g, _ := setupGame(t, 0)
	if _, err := g.PlaceTower("quantum", component.Position{X: 1, Y: 1}); !errors.Is(err, defs.ErrUnknownTower) {
		t.Errorf("unknown tower err = %v", err)
	}
	if _, err := g.PlaceTower("firewall", component.Position{X: 101, Y: 1}); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("outside arena err = %v", err)
	}
}

func TestSelectionFlow(t *testing.T) {
	g, _ := setupGame(t, 0)
	if _, err := g.PlaceSelected(component.Position{X: 5, Y: 5}); !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
	if err := g.SelectDefinition("quantum"); err == nil {
		t.Error("selected an unknown definition")
	}
	if err := g.SelectDefinition("ssl"); err != nil {
		t.Fatal(err)
	}
	if g.Selected() != "ssl" {
		t.Fatalf("Selected = %q", g.Selected())
	}
	tower, err := g.PlaceSelected(component.Position{X: 5, Y: 5})
	if err != nil || tower.ID != "ssl" {
		t.Fatalf("PlaceSelected = %v, %v", tower.ID, err)
	}
	if g.Selected() != "" {
		t.Error("selection not cleared after placement")
	}

	_ = g.SelectDefinition("vpn")
	g.Deselect()
	if g.Selected() != "" {
		t.Error("Deselect kept the selection")
	}
	_ = g.SelectDefinition("vpn")
	_ = g.SelectDefinition("")
	if g.Selected() != "" {
		t.Error("empty id did not clear the selection")
	}
}

func TestPixelIntents(t *testing.T) {
	g, _ := setupGame(t, 0)
	g.ReportArenaDimensions(0, 0)
	if _, err := g.PlaceTowerAtPixel("firewall", 10, 10); !errors.Is(err, ErrArenaUnknown) {
		t.Errorf("err = %v, want ErrArenaUnknown", err)
	}

	g.ReportArenaDimensions(800, 400)
	tower, err := g.PlaceTowerAtPixel("firewall", 400, 100)
	if err != nil {
		t.Fatal(err)
	}
	if tower.Position.X != 50 || tower.Position.Y != 25 {
		t.Errorf("position = %+v, want 50,25", tower.Position)
	}

	if _, ok := g.TowerAtPixel(400+30, 100); ok {
		t.Error("hit outside the 25px hitbox")
	}
	id, ok := g.TowerAtPixel(410, 110)
	if !ok || id != tower.InstanceID {
		t.Errorf("TowerAtPixel = %d, %v", id, ok)
	}
	if !g.RemoveTowerAtPixel(410, 110) {
		t.Error("RemoveTowerAtPixel failed")
	}
}

func TestMoveTower(t *testing.T) {
	g, _ := setupGame(t, 0)
	tower, _ := g.PlaceTower("mfa", component.Position{X: 10, Y: 10})
	if err := g.MoveTower(tower.InstanceID, component.Position{X: 70, Y: 30}); err != nil {
		t.Fatal(err)
	}
	if p := g.Snapshot().Towers[0].Position; p.X != 70 || p.Y != 30 {
		t.Errorf("position = %+v", p)
	}
	if err := g.MoveTower(99, component.Position{X: 1, Y: 1}); !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("err = %v", err)
	}
}

func TestStartSpawnsAndTicksImmediately(t *testing.T) {
	g, clk := setupGame(t, 0)
	g.Start()
	snap := g.Snapshot()
	if snap.Phase != component.Running || snap.Tick != 1 || len(snap.Enemies) != 1 {
		t.Fatalf("after start: phase %s tick %d enemies %d", snap.Phase, snap.Tick, len(snap.Enemies))
	}
	if len(snap.Encountered) != 1 {
		t.Errorf("encountered = %v", snap.Encountered)
	}

	for i := 0; i < 40; i++ {
		clk.Advance(150 * time.Millisecond)
		g.Update()
	}
	snap = g.Snapshot()
	if snap.Tick != 41 || snap.Stats.Spawned != 2 {
		t.Errorf("after 6s: tick %d spawned %d, want 41 and 2", snap.Tick, snap.Stats.Spawned)
	}

	g.Start()
	if g.Snapshot().Tick != 41 {
		t.Error("Start while running ticked again")
	}
}

func TestStalledClockCatchUpIsBounded(t *testing.T) {
	g, clk := setupGame(t, 0)
	g.Start()

	clk.Advance(time.Minute)
	if n := g.Update(); n > 2*config.MaxCatchUp {
		t.Fatalf("Update after a 1m stall fired %d callbacks, want at most %d", n, 2*config.MaxCatchUp)
	}
	snap := g.Snapshot()
	if snap.Tick != 1+config.MaxCatchUp {
		t.Errorf("tick = %d, want %d", snap.Tick, 1+config.MaxCatchUp)
	}
	if snap.Stats.Spawned > 1+config.MaxCatchUp {
		t.Errorf("spawned = %d, want at most %d", snap.Stats.Spawned, 1+config.MaxCatchUp)
	}

	clk.Advance(150 * time.Millisecond)
	if n := g.Update(); n != 1 {
		t.Errorf("next frame fired %d, want 1", n)
	}
}

func TestPauseResumesOnlyWhatItStopped(t *testing.T) {
	g, _ := setupGame(t, 0)
	g.Start()

	p := g.Pause()
	if g.Phase() != component.Idle {
		t.Fatalf("phase while paused = %s, want idle", g.Phase())
	}
	p.Resume()
	if g.Phase() != component.Running {
		t.Errorf("phase after resume = %s, want running", g.Phase())
	}
	p.Resume()
	if g.Phase() != component.Running {
		t.Errorf("second resume changed phase to %s", g.Phase())
	}

	g.Stop()
	g.Pause().Resume()
	if g.Phase() != component.Idle {
		t.Errorf("pausing an idle session then resuming started it: %s", g.Phase())
	}
}

func TestPauseEndKeepsSessionStopped(t *testing.T) {
	g, _ := setupGame(t, 0)
	g.Start()

	p := g.Pause()
	p.End()
	p.Resume()
	if g.Phase() != component.Idle {
		t.Errorf("phase = %s, want idle after ending the pause", g.Phase())
	}
}

func TestStopPreservesState(t *testing.T) {
	g, clk := setupGame(t, 0)
	g.Start()
	clk.Advance(time.Second)
	g.Update()
	before := g.Snapshot()

	g.Stop()
	g.Stop()
	clk.Advance(time.Minute)
	g.Update()
	after := g.Snapshot()

	if after.Phase != component.Idle {
		t.Errorf("phase = %s", after.Phase)
	}
	if after.Tick != before.Tick || len(after.Enemies) != len(before.Enemies) {
		t.Errorf("stopped session advanced: tick %d -> %d", before.Tick, after.Tick)
	}
}

func TestToggle(t *testing.T) {
	g, _ := setupGame(t, 0)
	g.Toggle()
	if g.Phase() != component.Running {
		t.Fatalf("phase = %s", g.Phase())
	}
	g.Toggle()
	if g.Phase() != component.Idle {
		t.Fatalf("phase = %s", g.Phase())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, clk := setupGame(t, 1_000_000)
	if _, err := g.PlaceTower("backup", component.Position{X: 90, Y: 10}); err != nil {
		t.Fatal(err)
	}
	g.Start()
	firstSession := g.SessionID()

	id, err := g.SpawnEnemy("ddos")
	if err != nil {
		t.Fatal(err)
	}
	g.mu.Lock()
	g.ECS.GameState.NetworkHealth = 20
	g.mu.Unlock()
	pinEnemy(g, int(id), 50, 74.9)

	clk.Advance(150 * time.Millisecond)
	g.Update()

	snap := g.Snapshot()
	if !snap.GameOver || snap.Phase != component.GameOver {
		t.Fatalf("phase = %s, want game_over", snap.Phase)
	}
	if snap.NetworkHealth != 0 {
		t.Errorf("network health = %v", snap.NetworkHealth)
	}
	if snap.Breacher == nil || snap.Breacher.InstanceID != id || snap.Breacher.EnemyID != "ddos" {
		t.Errorf("breacher = %+v", snap.Breacher)
	}

	frozen := snap.Tick
	clk.Advance(time.Minute)
	g.Update()
	g.TickNow()
	if g.Snapshot().Tick != frozen {
		t.Error("loops kept running after game over")
	}

	g.Start()
	snap = g.Snapshot()
	if snap.Phase != component.Running || snap.NetworkHealth != 100 || snap.Budget != 1_000_000 {
		t.Errorf("after restart: phase %s health %v budget %d", snap.Phase, snap.NetworkHealth, snap.Budget)
	}
	if len(snap.Towers) != 0 || snap.Breacher != nil || snap.Reason != "" {
		t.Errorf("restart kept old state: %d towers, breacher %v", len(snap.Towers), snap.Breacher)
	}
	if len(snap.Enemies) != 1 || snap.Enemies[0].InstanceID != 1 {
		t.Errorf("enemy ids not reset: %+v", snap.Enemies)
	}
	if len(snap.Encountered) != 1 {
		t.Errorf("encountered not reset: %v", snap.Encountered)
	}
	if g.SessionID() == firstSession {
		t.Error("session id unchanged after restart")
	}

	tower, err := g.PlaceTower("mfa", component.Position{X: 20, Y: 20})
	if err != nil || tower.InstanceID != 1 {
		t.Errorf("next tower id = %d, %v; want 1", tower.InstanceID, err)
	}
}

func TestOnTickDeliversOutsideLock(t *testing.T) {
	g, clk := setupGame(t, 0)
	var got []uint64
	cancel := g.OnTick(func(s Snapshot) {
		got = append(got, s.Tick)
		_ = g.Snapshot() // would deadlock if called under the lock
	})

	g.Start()
	clk.Advance(300 * time.Millisecond)
	g.Update()

	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("ticks delivered = %v, want [1 2 3]", got)
	}

	cancel()
	clk.Advance(300 * time.Millisecond)
	g.Update()
	if len(got) != 3 {
		t.Errorf("listener called after cancel: %v", got)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g, _ := setupGame(t, 0)
	_, _ = g.PlaceTower("ids", component.Position{X: 50, Y: 50})
	_, _ = g.SpawnEnemy("sqli")

	snap := g.Snapshot()
	snap.Towers[0].Counters[0] = "mutated"
	snap.Enemies[0].Path[0].X = -1

	again := g.Snapshot()
	if again.Towers[0].Counters[0] == "mutated" || again.Enemies[0].Path[0].X == -1 {
		t.Error("snapshot shares memory with the engine")
	}
}

func TestTickNowAdvancesWhileIdle(t *testing.T) {
	g, _ := setupGame(t, 0)
	_, _ = g.SpawnEnemy("phishing")
	before := g.Snapshot().Enemies[0].Position
	g.TickNow()
	after := g.Snapshot()
	if after.Tick != 1 || after.Enemies[0].Position == before {
		t.Errorf("TickNow did not step the simulation: tick %d", after.Tick)
	}
}

func TestLongRunInvariants(t *testing.T) {
	g, clk := setupGame(t, 0)
	for i, id := range []string{"firewall", "antivirus", "ids", "ssl", "updates", "mfa", "backup", "training"} {
		x := 15 + float64(i)*10
		if _, err := g.PlaceTower(id, component.Position{X: x, Y: 40 + float64(i%2)*15}); err != nil {
			t.Fatalf("place %s: %v", id, err)
		}
	}

	killed := map[types.InstanceID]int{}
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		killed[e.Data.(*component.SpawnedEnemy).InstanceID]++
	}))

	g.Start()
	for i := 0; i < 2000 && g.Phase() == component.Running; i++ {
		clk.Advance(150 * time.Millisecond)
		g.Update()
		snap := g.Snapshot()
		for _, e := range snap.Enemies {
			if e.Health <= 0 || e.Health > 100 {
				t.Fatalf("tick %d: live enemy %d has health %v", snap.Tick, e.InstanceID, e.Health)
			}
		}
		if snap.NetworkHealth < 0 || snap.NetworkHealth > 100 {
			t.Fatalf("network health %v", snap.NetworkHealth)
		}
	}

	for id, n := range killed {
		if n != 1 {
			t.Errorf("enemy %d rewarded %d times", id, n)
		}
	}
	if len(killed) == 0 {
		t.Error("no enemy was ever killed")
	}
}

func TestRunDrivesRealClock(t *testing.T) {
	g, err := NewGame(Options{
		Seed:          1,
		TickInterval:  5 * time.Millisecond,
		SpawnInterval: time.Hour,
		Arena:         component.Arena{Width: 100, Height: 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	g.Start()
	time.Sleep(100 * time.Millisecond)
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v", err)
	}
	if tick := g.Snapshot().Tick; tick < 3 {
		t.Errorf("only %d ticks in 100ms at 5ms intervals", tick)
	}
}
