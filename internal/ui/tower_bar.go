// internal/ui/tower_bar.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	slotColor       = color.RGBA{R: 45, G: 55, B: 75, A: 255}
	slotBorderColor = color.RGBA{R: 70, G: 100, B: 120, A: 255}
	unaffordable    = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// TowerBar — ряд кнопок с определениями башен. Key N selects slot N.
type TowerBar struct {
	Towers   []defs.TowerDefinition
	Slots    []image.Rectangle
	fontFace font.Face
}

func NewTowerBar(towers []defs.TowerDefinition, x, y, width, height int, face font.Face) *TowerBar {
	return &TowerBar{
		Towers:   towers,
		Slots:    render.Row(len(towers), x, y, width, height, 6),
		fontFace: face,
	}
}

// At returns the definition id under (x, y).
func (b *TowerBar) At(x, y int) (string, bool) {
	i := render.HitIndex(b.Slots, x, y)
	if i < 0 {
		return "", false
	}
	return b.Towers[i].ID, true
}

// Key returns the definition bound to the n-th number key, counting from 1.
func (b *TowerBar) Key(n int) (string, bool) {
	if n < 1 || n > len(b.Towers) {
		return "", false
	}
	return b.Towers[n-1].ID, true
}

func (b *TowerBar) Draw(screen *ebiten.Image, selected string, budget int64) {
	for i, slot := range b.Slots {
		def := b.Towers[i]
		x, y := float32(slot.Min.X), float32(slot.Min.Y)
		w, h := float32(slot.Dx()), float32(slot.Dy())

		vector.DrawFilledRect(screen, x, y, w, h, slotColor, false)
		stroke := color.Color(slotBorderColor)
		if def.ID == selected {
			stroke = config.SelectedColor
		}
		vector.StrokeRect(screen, x, y, w, h, 2, stroke, false)

		swatch := render.ColorOr(def.Color, config.TowerStrokeColor)
		vector.DrawFilledCircle(screen, x+14, y+h/2, 8, swatch, true)

		if b.fontFace == nil {
			continue
		}
		textColor := color.Color(config.TextLightColor)
		if def.Cost > budget {
			textColor = unaffordable
		}
		label := def.Symbol
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, def.Symbol)
		}
		text.Draw(screen, label, b.fontFace, int(x)+28, int(y)+16, textColor)
		text.Draw(screen, render.FormatBudget(def.Cost), b.fontFace, int(x)+28, int(y)+32, textColor)
	}
}
