// internal/ui/meter.go
package ui

import (
	"image/color"

	"cyber-tower-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const borderWidth = 1

var borderColor = color.White

// Meter — горизонтальная полоса с подписью (здоровье сети, бюджет).
type Meter struct {
	X, Y          float32
	Width, Height float32
	Label         string
	fontFace      font.Face
}

func NewMeter(x, y, width, height float32, label string, face font.Face) *Meter {
	return &Meter{X: x, Y: y, Width: width, Height: height, Label: label, fontFace: face}
}

// Draw рисует полосу, заполненную на ratio, и значение справа от подписи.
func (m *Meter) Draw(screen *ebiten.Image, ratio float64, value string, fill color.Color) {
	ratio = utils.Clamp(ratio, 0, 1)

	vector.StrokeRect(screen, m.X, m.Y, m.Width, m.Height, borderWidth, borderColor, true)
	fillWidth := float32(float64(m.Width-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, m.X+borderWidth, m.Y+borderWidth, fillWidth, m.Height-borderWidth*2, fill, true)
	}

	if m.fontFace == nil {
		return
	}
	caption := m.Label + "  " + value
	text.Draw(screen, caption, m.fontFace, int(m.X), int(m.Y)-4, color.White)
}
