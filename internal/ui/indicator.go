// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"cyber-tower-defense/internal/component"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StateIndicatorRL - версия индикатора для Raylib
type StateIndicatorRL struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор цветом фазы
func (i *StateIndicatorRL) Draw(phase component.Phase) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	currentRadius := i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, colorToRL(PhaseColor(phase)))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicatorRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(i.X, i.Y), i.Radius)
}

func (i *StateIndicatorRL) HandleClick() {
	i.LastClickTime = time.Now()
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// ColorToRL is colorToRL for callers outside the package.
func ColorToRL(c color.Color) rl.Color {
	return colorToRL(c)
}
