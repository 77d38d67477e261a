package app

import (
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/types"
)

// TowerView is a placed tower as seen by presentation layers.
type TowerView struct {
	InstanceID types.InstanceID   `json:"instanceId"`
	TowerID    string             `json:"towerId"`
	Name       string             `json:"name"`
	Symbol     string             `json:"symbol"`
	Color      string             `json:"color"`
	AttackType defs.AttackType    `json:"attackType"`
	Counters   []string           `json:"counters"`
	Effects    []string           `json:"effects"`
	Cost       int64              `json:"cost"`
	Position   component.Position `json:"position"`
	Range      float64            `json:"range"`
	CooldownMS int64              `json:"cooldownMs"`
	Ready      bool               `json:"ready"`
}

// EffectView is one active effect.
type EffectView struct {
	Type        component.EffectKind `json:"type"`
	RemainingMS int64                `json:"remainingMs"`
	Damage      float64              `json:"damage,omitempty"`
	Factor      float64              `json:"factor,omitempty"`
}

// EnemyView is a spawned enemy as seen by presentation layers.
type EnemyView struct {
	InstanceID types.InstanceID     `json:"instanceId"`
	EnemyID    string               `json:"enemyId"`
	Name       string               `json:"name"`
	Symbol     string               `json:"symbol"`
	Color      string               `json:"color"`
	Severity   defs.Severity        `json:"severity"`
	Position   component.Position   `json:"position"`
	Health     float64              `json:"health"`
	Path       []component.Position `json:"path"`
	Effects    []EffectView         `json:"effects"`
	ReachedEnd bool                 `json:"reachedEnd"`
}

// AttackView is one hit from the last tick.
type AttackView struct {
	TowerID types.InstanceID   `json:"towerId"`
	EnemyID types.InstanceID   `json:"enemyId"`
	From    component.Position `json:"from"`
	To      component.Position `json:"to"`
	Damage  float64            `json:"damage"`
}

// Snapshot is a self-contained copy of the session state. It shares no
// memory with the engine.
type Snapshot struct {
	SessionID     string          `json:"sessionId"`
	Tick          uint64          `json:"tick"`
	Time          time.Time       `json:"time"`
	Phase         component.Phase `json:"phase"`
	Towers        []TowerView     `json:"towers"`
	Enemies       []EnemyView     `json:"enemies"`
	NetworkHealth float64         `json:"networkHealth"`
	Budget        int64           `json:"budget"`
	InitialBudget int64           `json:"initialBudget"`
	GameOver      bool            `json:"gameOver"`
	Reason        string          `json:"reason,omitempty"`
	Breacher      *EnemyView      `json:"breacher,omitempty"`
	Encountered   []string        `json:"encounteredEnemies"`
	Active        []string        `json:"activeEnemies"`
	Selected      string          `json:"selected,omitempty"`
	Arena         component.Arena `json:"arena"`
	Attacks       []AttackView    `json:"attacks"`
	Stats         Stats           `json:"stats"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked(g.Clock.Now())
}

func (g *Game) snapshotLocked(now time.Time) Snapshot {
	gs := g.ECS.GameState
	snap := Snapshot{
		SessionID:     g.sessionID,
		Tick:          g.tickCount,
		Time:          now,
		Phase:         gs.Phase,
		Towers:        make([]TowerView, 0, len(g.ECS.Towers)),
		Enemies:       make([]EnemyView, 0, len(g.ECS.Enemies)),
		NetworkHealth: gs.NetworkHealth,
		Budget:        g.Ledger.Budget(),
		InitialBudget: g.Ledger.Initial(),
		GameOver:      gs.Phase == component.GameOver,
		Reason:        gs.Reason,
		Encountered:   append([]string{}, g.ECS.Encountered...),
		Active:        append([]string{}, g.ECS.ActiveEnemyTypes()...),
		Selected:      g.selected,
		Arena:         g.ECS.Arena,
		Attacks:       make([]AttackView, 0, len(g.ECS.Attacks)),
		Stats:         g.stats,
	}

	for _, t := range g.ECS.Towers {
		snap.Towers = append(snap.Towers, TowerView{
			InstanceID: t.InstanceID,
			TowerID:    t.ID,
			Name:       t.Name,
			Symbol:     t.Symbol,
			Color:      t.Color,
			AttackType: t.AttackType,
			Counters:   append([]string{}, t.Counters...),
			Effects:    append([]string{}, t.Effects...),
			Cost:       t.Cost,
			Position:   t.Position,
			Range:      t.Range,
			CooldownMS: t.Cooldown.Milliseconds(),
			Ready:      t.Ready(now),
		})
	}
	for _, e := range g.ECS.Enemies {
		if !e.Alive() {
			continue
		}
		snap.Enemies = append(snap.Enemies, enemyView(e, now))
	}
	if gs.Breacher != nil {
		v := enemyView(gs.Breacher, now)
		snap.Breacher = &v
	}
	for _, a := range g.ECS.Attacks {
		snap.Attacks = append(snap.Attacks, AttackView{
			TowerID: a.TowerID,
			EnemyID: a.EnemyID,
			From:    a.From,
			To:      a.To,
			Damage:  a.Damage,
		})
	}
	return snap
}

func enemyView(e *component.SpawnedEnemy, now time.Time) EnemyView {
	v := EnemyView{
		InstanceID: e.InstanceID,
		EnemyID:    e.ID,
		Name:       e.Name,
		Symbol:     e.Symbol,
		Color:      e.Color,
		Severity:   e.Severity,
		Position:   e.Position,
		Health:     e.Health,
		Path:       append([]component.Position{}, e.Path...),
		Effects:    make([]EffectView, 0, len(e.Effects)),
		ReachedEnd: e.ReachedEnd,
	}
	for _, effect := range e.Effects {
		ev := EffectView{
			Type:        effect.Kind(),
			RemainingMS: max(effect.Duration()-now.Sub(effect.StartedAt()), 0).Milliseconds(),
		}
		switch fx := effect.(type) {
		case component.Burn:
			ev.Damage = fx.Damage
		case component.Slow:
			ev.Factor = fx.Factor
		case component.Block:
			ev.Factor = fx.Factor
		case component.Scan:
			ev.Factor = fx.Factor
		}
		v.Effects = append(v.Effects, ev)
	}
	return v
}
