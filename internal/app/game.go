// internal/app/game.go
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"cyber-tower-defense/internal/clock"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/internal/event"
	"cyber-tower-defense/internal/system"
	"cyber-tower-defense/internal/utils"
	"cyber-tower-defense/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInsufficientBudget = system.ErrInsufficientBudget
	ErrNoSelection        = errors.New("no tower definition selected")
	ErrArenaUnknown       = errors.New("arena dimensions not reported")
	ErrInvalidPosition    = errors.New("position outside the arena")
	ErrUnknownInstance    = errors.New("unknown tower instance")
)

// Options configure a Game. Zero fields take the defaults from config.
type Options struct {
	Catalog       *defs.Catalog
	Clock         clock.Clock
	Seed          int64 // 0 seeds from the wall clock
	TickInterval  time.Duration
	SpawnInterval time.Duration
	InitialBudget int64
	Arena         component.Arena
	MaxCatchUp    int // overdue ticks/spawns replayed per Update after a stall
}

// OptionsFromSettings maps environment settings onto Options.
func OptionsFromSettings(s config.Settings, catalog *defs.Catalog) Options {
	return Options{
		Catalog:       catalog,
		Seed:          s.Seed,
		TickInterval:  s.TickInterval,
		SpawnInterval: s.SpawnInterval,
		InitialBudget: s.InitialBudget,
		Arena:         component.Arena{Width: s.ArenaWidth, Height: s.ArenaHeight},
	}
}

// Stats are running session counters.
type Stats struct {
	Spawned  int `json:"spawned"`
	Killed   int `json:"killed"`
	Breaches int `json:"breaches"`
}

// Game is the simulation engine behind every presentation layer. All methods
// are safe for concurrent use; one mutex serialises intents and ticks.
type Game struct {
	mu sync.Mutex

	ECS                *entity.ECS
	Catalog            *defs.Catalog
	Clock              clock.Clock
	EventDispatcher    *event.Dispatcher
	Ledger             *system.Ledger
	CombatSystem       *system.CombatSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	CasualtySystem     *system.CasualtySystem
	SpawnSystem        *system.SpawnSystem
	StateSystem        *system.StateSystem
	Rng                *utils.PRNGService

	scheduler *clock.Scheduler
	selected  string
	sessionID string
	tickCount uint64
	stats     Stats

	listeners    map[int]func(Snapshot)
	nextListener int
	pending      []Snapshot
	wake         chan struct{}
}

// NewGame initializes a new game instance in the Idle phase.
func NewGame(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		catalog, err := defs.DefaultCatalog()
		if err != nil {
			return nil, err
		}
		opts.Catalog = catalog
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = config.SpawnInterval
	}
	if opts.InitialBudget <= 0 {
		opts.InitialBudget = config.InitialBudget
	}
	if opts.MaxCatchUp <= 0 {
		opts.MaxCatchUp = config.MaxCatchUp
	}

	ecs := entity.NewECS()
	ecs.Arena = opts.Arena
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	effects := system.NewStatusEffectSystem(ecs)

	g := &Game{
		ECS:                ecs,
		Catalog:            opts.Catalog,
		Clock:              opts.Clock,
		EventDispatcher:    eventDispatcher,
		Ledger:             system.NewLedger(opts.InitialBudget),
		StatusEffectSystem: effects,
		CombatSystem:       system.NewCombatSystem(ecs, effects),
		MovementSystem:     system.NewMovementSystem(ecs, effects, eventDispatcher),
		CasualtySystem:     system.NewCasualtySystem(ecs, eventDispatcher),
		SpawnSystem:        system.NewSpawnSystem(ecs, opts.Catalog, rng, eventDispatcher),
		Rng:                rng,
		sessionID:          uuid.NewString(),
		listeners:          make(map[int]func(Snapshot)),
		wake:               make(chan struct{}, 1),
	}
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.scheduler = clock.NewScheduler(opts.TickInterval, opts.SpawnInterval, g.tick, g.spawn)
	g.scheduler.SetMaxBacklog(opts.MaxCatchUp)

	eventDispatcher.Subscribe(event.TowerRemoved, g.Ledger)
	eventDispatcher.Subscribe(event.EnemyKilled, g.Ledger)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemySpawned, listener)
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.NetworkBreached, listener)

	logger.Log.WithFields(logrus.Fields{
		"session": g.sessionID,
		"towers":  len(opts.Catalog.TowerIDs()),
		"enemies": len(opts.Catalog.EnemyIDs()),
		"budget":  opts.InitialBudget,
	}).Info("game created")
	return g, nil
}

// GameEventListener keeps the session counters.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		l.game.stats.Spawned++
	case event.EnemyKilled:
		l.game.stats.Killed++
	case event.NetworkBreached:
		l.game.stats.Breaches++
	}
}

// tick runs one simulation step. Combat settles first, then effects and
// movement, and deaths are resolved last so every kill is seen exactly once.
func (g *Game) tick(at time.Time) {
	g.CombatSystem.Update(at)
	g.MovementSystem.Update(at)
	g.CasualtySystem.Update(at)
	g.tickCount++
	if len(g.listeners) > 0 {
		g.pending = append(g.pending, g.snapshotLocked(at))
	}
}

func (g *Game) spawn(at time.Time) {
	g.SpawnSystem.Update(at)
}

// HaltSimulation stops both loops. Called by the state system on game over,
// with the lock already held.
func (g *Game) HaltSimulation() {
	g.scheduler.Stop()
}

// Start begins or resumes the session. Starting after a game over resets the
// whole session first. Starting a running session does nothing. The first
// spawn and tick happen immediately.
func (g *Game) Start() {
	g.mu.Lock()
	switch g.ECS.GameState.Phase {
	case component.Running:
		g.mu.Unlock()
		return
	case component.GameOver:
		g.resetLocked()
	}
	g.StateSystem.SetPhase(component.Running)
	now := g.Clock.Now()
	g.scheduler.Start(now)
	g.scheduler.RunDue(now)
	g.signalWake()
	g.unlockAndFlush()
}

// Stop pauses a running session, keeping its state. Stopping a session that
// is not running does nothing.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ECS.GameState.Phase != component.Running {
		return
	}
	g.scheduler.Stop()
	g.StateSystem.SetPhase(component.Idle)
	g.signalWake()
}

// Toggle stops a running session and starts any other.
func (g *Game) Toggle() {
	g.mu.Lock()
	running := g.ECS.GameState.Phase == component.Running
	g.mu.Unlock()
	if running {
		g.Stop()
	} else {
		g.Start()
	}
}

// Reset discards the session and returns to Idle.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	g.signalWake()
}

func (g *Game) resetLocked() {
	g.scheduler.Stop()
	g.StateSystem.SetPhase(component.Idle)
	g.ECS.Reset()
	g.Ledger.Reset()
	g.tickCount = 0
	g.stats = Stats{}
	g.sessionID = uuid.NewString()
	logger.Log.WithField("session", g.sessionID).Info("session reset")
}

// Update fires every tick and spawn that is due at the current clock time.
// Frame-driven viewers call it once per frame.
func (g *Game) Update() int {
	g.mu.Lock()
	n := g.scheduler.RunDue(g.Clock.Now())
	g.unlockAndFlush()
	return n
}

// TickNow runs one tick immediately, outside the schedule. It does nothing
// once the game is over.
func (g *Game) TickNow() {
	g.mu.Lock()
	if g.ECS.GameState.Phase == component.GameOver {
		g.mu.Unlock()
		return
	}
	g.tick(g.Clock.Now())
	g.unlockAndFlush()
}

// Run drives the schedule in real time until ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	for {
		g.mu.Lock()
		next, ok := g.scheduler.Next()
		g.mu.Unlock()

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		if ok {
			timer = time.NewTimer(max(next.Sub(g.Clock.Now()), 0))
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case <-g.wake:
		case <-fire:
			g.Update()
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

func (g *Game) signalWake() {
	select {
	case g.wake <- struct{}{}:
	default:
	}
}

// OnTick registers fn to receive a snapshot after every tick. Listeners run
// outside the engine lock and may call back into the Game. The returned
// function unregisters fn.
func (g *Game) OnTick(fn func(Snapshot)) (cancel func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextListener
	g.nextListener++
	g.listeners[id] = fn
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.listeners, id)
	}
}

// unlockAndFlush releases the lock and delivers the snapshots queued by the
// ticks that ran under it.
func (g *Game) unlockAndFlush() {
	pending := g.pending
	g.pending = nil
	var listeners []func(Snapshot)
	if len(pending) > 0 {
		listeners = make([]func(Snapshot), 0, len(g.listeners))
		for id := 0; id < g.nextListener; id++ {
			if fn, ok := g.listeners[id]; ok {
				listeners = append(listeners, fn)
			}
		}
	}
	g.mu.Unlock()

	for _, snap := range pending {
		for _, fn := range listeners {
			fn(snap)
		}
	}
}

// ReportArenaDimensions records the pixel size of the render surface. Zero or
// negative sizes are stored but suspend range checks until corrected.
func (g *Game) ReportArenaDimensions(width, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	arena := component.Arena{Width: width, Height: height}
	if !arena.Valid() {
		logger.Log.WithFields(logrus.Fields{"width": width, "height": height}).Warn("invalid arena dimensions")
	}
	g.ECS.Arena = arena
}

// Phase returns the current session phase.
func (g *Game) Phase() component.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.GameState.Phase
}

// SessionID identifies the current session; it changes on every reset.
func (g *Game) SessionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessionID
}
