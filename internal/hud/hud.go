// Package hud holds presentation logic shared by the viewers that does not
// touch a graphics backend.
package hud

import (
	"fmt"
	"math"
	"time"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/utils"
)

// Beam is one tower hit kept on screen for a short while.
type Beam struct {
	From, To component.Position
	Damage   float64
	At       time.Time
}

// BeamTracker turns the per-tick attack lists of successive snapshots into
// fading beams.
type BeamTracker struct {
	lifetime time.Duration
	session  string
	lastTick uint64
	beams    []Beam
}

func NewBeamTracker(lifetime time.Duration) *BeamTracker {
	return &BeamTracker{lifetime: lifetime}
}

// Observe records the attacks of snap if it is a tick not seen before, and
// drops beams older than the lifetime. A new session clears everything.
func (t *BeamTracker) Observe(snap app.Snapshot, now time.Time) {
	if snap.SessionID != t.session {
		t.session = snap.SessionID
		t.lastTick = 0
		t.beams = t.beams[:0]
	}
	if snap.Tick != t.lastTick {
		t.lastTick = snap.Tick
		for _, a := range snap.Attacks {
			t.beams = append(t.beams, Beam{From: a.From, To: a.To, Damage: a.Damage, At: now})
		}
	}

	kept := t.beams[:0]
	for _, b := range t.beams {
		if now.Sub(b.At) < t.lifetime {
			kept = append(kept, b)
		}
	}
	t.beams = kept
}

// Each calls fn for every live beam with its current alpha.
func (t *BeamTracker) Each(now time.Time, fn func(b Beam, alpha uint8)) {
	for _, b := range t.beams {
		alpha := utils.Fade(now.Sub(b.At).Seconds(), t.lifetime.Seconds())
		if alpha > 0 {
			fn(b, alpha)
		}
	}
}

// Len returns the number of beams held.
func (t *BeamTracker) Len() int {
	return len(t.beams)
}

// EnemyAt returns the live enemy whose pixel center is within radius of
// (x, y). Later spawns win ties.
func EnemyAt(snap app.Snapshot, x, y, radius float64) (app.EnemyView, bool) {
	if !snap.Arena.Valid() {
		return app.EnemyView{}, false
	}
	for i := len(snap.Enemies) - 1; i >= 0; i-- {
		e := snap.Enemies[i]
		px, py := snap.Arena.ToPixel(e.Position)
		if math.Hypot(px-x, py-y) <= radius {
			return e, true
		}
	}
	return app.EnemyView{}, false
}

// HealthRatio is an enemy's health as a fraction of full health.
func HealthRatio(health, full float64) float64 {
	if full <= 0 {
		return 0
	}
	return math.Min(math.Max(health/full, 0), 1)
}

// StatusLine summarises a snapshot for the HUD.
func StatusLine(snap app.Snapshot) string {
	return fmt.Sprintf("tick %d   threats %d   neutralised %d   breaches %d",
		snap.Tick, len(snap.Enemies), snap.Stats.Killed, snap.Stats.Breaches)
}
