// internal/ui/state_indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок цвета текущей фазы; пульсирует после клика.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor maps a session phase to its indicator color.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.Running:
		return config.RunningStateColor
	case component.GameOver:
		return config.GameOverColor
	default:
		return config.IdleStateColor
	}
}

func (i *StateIndicator) currentRadius() float32 {
	elapsed := time.Since(i.LastClickTime).Seconds()
	return i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))
}

func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	r := i.currentRadius()
	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.IndicatorStroke, true)
}

// Contains проверяет, попадает ли точка в индикатор.
func (i *StateIndicator) Contains(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
