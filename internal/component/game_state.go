package component

import "fmt"

// Phase is the session state.
type Phase int

const (
	Idle Phase = iota
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{Idle, Running, GameOver} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// GameState holds the session phase and network health, plus the breach
// record once the network has fallen.
type GameState struct {
	Phase         Phase
	NetworkHealth float64
	Breacher      *SpawnedEnemy
	Reason        string
}
