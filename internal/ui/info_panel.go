// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth     = 320
	panelHeight    = 130
	panelMargin    = 8
	animationSpeed = 12.0
	lineHeight     = 18
)

// InfoPanel выезжает справа и показывает выбранную башню или угрозу под курсором.
type InfoPanel struct {
	IsVisible     bool
	fontFace      font.Face
	titleFontFace font.Face
	lines         []string
	title         string
	currentX      float64
	targetX       float64
}

func NewInfoPanel(face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		currentX:      config.ScreenWidth,
		targetX:       config.ScreenWidth,
	}
}

// ShowTower fills the panel with a tower definition.
func (p *InfoPanel) ShowTower(def defs.TowerDefinition) {
	p.title = def.Name
	p.lines = []string{
		fmt.Sprintf("Cost: %d   Attack: %s", def.Cost, def.AttackType),
		"Counters: " + joinOrDash(def.Counters),
		"Effects: " + joinOrDash(def.Effects),
		def.Description,
	}
	p.show()
}

// ShowEnemy fills the panel with a live threat.
func (p *InfoPanel) ShowEnemy(e app.EnemyView, def defs.EnemyDefinition) {
	p.title = fmt.Sprintf("%s #%d", e.Name, e.InstanceID)
	effects := make([]string, 0, len(e.Effects))
	for _, fx := range e.Effects {
		effects = append(effects, string(fx.Type))
	}
	p.lines = []string{
		fmt.Sprintf("Health: %.0f   Severity: %s", e.Health, e.Severity),
		"Weak to: " + joinOrDash(def.Weaknesses),
		"Effects: " + joinOrDash(effects),
		def.Description,
	}
	p.show()
}

func (p *InfoPanel) show() {
	p.IsVisible = true
	p.targetX = config.ScreenWidth - panelWidth - panelMargin
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	diff := p.targetX - p.currentX
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentX = p.targetX
	case diff > 0:
		p.currentX += animationSpeed
	default:
		p.currentX -= animationSpeed
	}
	if p.currentX >= config.ScreenWidth {
		p.IsVisible = false
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible || p.fontFace == nil {
		return
	}
	rect := image.Rect(int(p.currentX), panelMargin, int(p.currentX)+panelWidth, panelMargin+panelHeight)

	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	x, y := rect.Min.X+12, rect.Min.Y+22
	text.Draw(screen, p.title, p.titleFontFace, x, y, config.TextLightColor)
	for _, line := range p.lines {
		y += lineHeight
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
