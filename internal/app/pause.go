package app

import "cyber-tower-defense/internal/component"

// Pause is an interruption of a session. It stops the schedule if it was
// running and remembers whether to restart it on Resume.
type Pause struct {
	game   *Game
	resume bool
}

// Pause stops a running session. Pausing an idle or finished session is
// allowed; Resume then leaves it as it was.
func (g *Game) Pause() *Pause {
	p := &Pause{game: g}
	if g.Phase() == component.Running {
		g.Stop()
		p.resume = true
	}
	return p
}

// Resume restarts the session if this pause stopped it. Later calls are no-ops.
func (p *Pause) Resume() {
	if p.resume {
		p.resume = false
		p.game.Start()
	}
}

// End keeps the session stopped: a following Resume does nothing.
func (p *Pause) End() {
	p.resume = false
}
