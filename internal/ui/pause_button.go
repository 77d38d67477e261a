// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SessionButtonRL - кнопка старт/стоп сессии. Shows "play" while the session
// is stopped and "pause" while it runs.
type SessionButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewSessionButtonRL(x, y, size float32, pauseColor, playColor color.Color) *SessionButtonRL {
	return &SessionButtonRL{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *SessionButtonRL) Draw(running bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	rectSize := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if !running {
		// Треугольник (play)
		rlColor := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-rectSize, b.Y-rectSize*1.2)
		p2 := rl.NewVector2(b.X-rectSize, b.Y+rectSize*1.2)
		p3 := rl.NewVector2(b.X+rectSize, b.Y)
		rl.DrawTriangle(p1, p2, p3, rlColor)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}

	// Два прямоугольника (pause)
	rlColor := colorToRL(b.PauseColor)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	left := rl.NewRectangle(b.X-width-spacing/2, b.Y-height/2, width, height)
	right := rl.NewRectangle(b.X+spacing/2, b.Y-height/2, width, height)
	for _, r := range []rl.Rectangle{left, right} {
		rl.DrawRectangleRec(r, rlColor)
		rl.DrawRectangleLinesEx(r, 1, rl.White)
	}
}

func (b *SessionButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

func (b *SessionButtonRL) HandleClick() {
	b.LastClickTime = time.Now()
}
