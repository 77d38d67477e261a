package system

import (
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/pkg/logger"
)

func init() {
	logger.Silence()
}

var epoch = time.Unix(1_700_000_000, 0)

type haltRecorder struct {
	halts int
}

func (h *haltRecorder) HaltSimulation() { h.halts++ }

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	effects    *StatusEffectSystem
	combat     *CombatSystem
	movement   *MovementSystem
	casualties *CasualtySystem
	ledger     *Ledger
	state      *StateSystem
	halt       *haltRecorder
}

// setupWorld wires the systems the way the game does, over a 1000x1000 arena
// so that one percent equals ten pixels.
func setupWorld(budget int64) *world {
	ecs := entity.NewECS()
	ecs.Arena = component.Arena{Width: 1000, Height: 1000}
	d := event.NewDispatcher()
	effects := NewStatusEffectSystem(ecs)
	ledger := NewLedger(budget)
	d.Subscribe(event.TowerRemoved, ledger)
	d.Subscribe(event.EnemyKilled, ledger)
	halt := &haltRecorder{}
	w := &world{
		ecs:        ecs,
		dispatcher: d,
		effects:    effects,
		combat:     NewCombatSystem(ecs, effects),
		movement:   NewMovementSystem(ecs, effects, d),
		casualties: NewCasualtySystem(ecs, d),
		ledger:     ledger,
		state:      NewStateSystem(ecs, halt, d),
		halt:       halt,
	}
	ecs.GameState.Phase = component.Running
	return w
}

func (w *world) tick(now time.Time) {
	w.combat.Update(now)
	w.movement.Update(now)
	w.casualties.Update(now)
}

func (w *world) addTower(def defs.TowerDefinition, x, y float64) *component.PlacedTower {
	t := CreatePlacedTower(def, w.ecs.NewTowerID(), component.Position{X: x, Y: y})
	w.ecs.AddTower(t)
	return t
}

// addEnemy places an enemy standing still at (x, y).
func (w *world) addEnemy(def defs.EnemyDefinition, x, y float64) *component.SpawnedEnemy {
	e := &component.SpawnedEnemy{
		EnemyDefinition: def,
		InstanceID:      w.ecs.NewEnemyID(),
		Position:        component.Position{X: x, Y: y},
		Health:          100,
		Path:            []component.Position{{X: x, Y: y}},
	}
	w.ecs.AddEnemy(e)
	return e
}

func (w *world) enemy(i int) *component.SpawnedEnemy {
	return w.ecs.Enemies[i]
}

var (
	firewallDef = defs.TowerDefinition{ID: "firewall", Name: "Firewall", Counters: []string{"ddos"}, AttackType: defs.AttackArea, Cost: 50_000}
	sslDef      = defs.TowerDefinition{ID: "ssl", Name: "SSL", Counters: []string{"mitm"}, Effects: []string{"scan"}, Cost: 200_000}
	burnerDef   = defs.TowerDefinition{ID: "antivirus", Name: "Antivirus", Counters: []string{"malware"}, Effects: []string{"burn"}, Cost: 150_000}
	slowerDef   = defs.TowerDefinition{ID: "encryption", Name: "Encryption", Counters: []string{"mitm"}, Effects: []string{"slow"}, Cost: 400_000}

	sqliDef    = defs.EnemyDefinition{ID: "sqli", Name: "SQL Injection", Weaknesses: []string{"firewall"}, Severity: defs.SeverityHigh}
	mitmDef    = defs.EnemyDefinition{ID: "mitm", Name: "Man-in-the-Middle", Weaknesses: []string{"ssl"}, Severity: defs.SeverityHigh}
	malwareDef = defs.EnemyDefinition{ID: "malware", Name: "Malware", Severity: defs.SeverityMedium}
	ddosDef    = defs.EnemyDefinition{ID: "ddos", Name: "DDoS Attack", Weaknesses: []string{"firewall"}, Severity: defs.SeverityExtreme}
	phishDef   = defs.EnemyDefinition{ID: "phishing", Name: "Phishing", Severity: defs.SeverityMedium}
)

type listenerFunc func()

func (f listenerFunc) OnEvent(event.Event) { f() }
