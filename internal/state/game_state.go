// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/hud"
	"cyber-tower-defense/internal/types"
	"cyber-tower-defense/internal/ui"
	"cyber-tower-defense/pkg/logger"
	"cyber-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const gridStep = 50

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState — состояние игры: арена сверху, HUD снизу.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	titleFace     font.Face
	face          font.Face
	indicator     *ui.StateIndicator
	towerBar      *ui.TowerBar
	infoPanel     *ui.InfoPanel
	healthMeter   *ui.Meter
	budgetMeter   *ui.Meter
	beams         *hud.BeamTracker
	snap          app.Snapshot
	dragging      types.InstanceID
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, game *app.Game, titleFace, face font.Face) *GameState {
	hudTop := config.ArenaHeight
	return &GameState{
		sm:        sm,
		game:      game,
		titleFace: titleFace,
		face:      face,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(hudTop+config.IndicatorOffsetX),
			config.IndicatorRadius,
		),
		towerBar:    ui.NewTowerBar(game.Catalog.Towers(), 20, hudTop+52, config.ScreenWidth-40, 44, face),
		infoPanel:   ui.NewInfoPanel(face, titleFace),
		healthMeter: ui.NewMeter(20, float32(hudTop+24), 220, 12, "NETWORK", face),
		budgetMeter: ui.NewMeter(270, float32(hudTop+24), 220, 12, "BUDGET", face),
		beams:       hud.NewBeamTracker(config.BeamLifetime),
	}
}

func (g *GameState) Enter() {
	g.game.ReportArenaDimensions(config.ArenaWidth, config.ArenaHeight)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g, g.game, g.titleFace))
		return
	}
	g.handleKeys()

	g.game.Update()
	g.snap = g.game.Snapshot()
	g.beams.Observe(g.snap, time.Now())

	g.handleMouse()
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.Toggle()
		g.indicator.HandleClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Deselect()
		g.infoPanel.Hide()
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			if id, ok := g.towerBar.Key(i + 1); ok {
				g.selectTower(id)
			}
		}
	}
}

func (g *GameState) selectTower(id string) {
	if err := g.game.SelectDefinition(id); err != nil {
		logger.Log.WithError(err).Debug("select failed")
		return
	}
	if def, err := g.game.Catalog.Tower(id); err == nil {
		g.infoPanel.ShowTower(def)
	}
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && time.Since(g.lastClickTime) >= config.ClickDebounceTime {
		g.lastClickTime = time.Now()
		if y >= config.ArenaHeight {
			g.handleUIClick(x, y)
		} else {
			g.handleArenaClick(x, y)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && y < config.ArenaHeight {
		g.game.RemoveTowerAtPixel(float64(x), float64(y))
	}

	// Перетаскивание башни средней кнопкой
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		if id, ok := g.game.TowerAtPixel(float64(x), float64(y)); ok {
			g.dragging = id
		}
	case g.dragging != 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		if y < config.ArenaHeight && g.snap.Arena.Valid() {
			pos := g.snap.Arena.FromPixel(float64(x), float64(y))
			if err := g.game.MoveTower(g.dragging, pos); err != nil {
				g.dragging = 0
			}
		}
	case g.dragging != 0:
		g.dragging = 0
	}
}

// handleUIClick обрабатывает клики по HUD
func (g *GameState) handleUIClick(x, y int) {
	if g.indicator.Contains(x, y) {
		g.game.Toggle()
		g.indicator.HandleClick()
		return
	}
	if id, ok := g.towerBar.At(x, y); ok {
		if g.game.Selected() == id {
			g.game.Deselect()
			g.infoPanel.Hide()
			return
		}
		g.selectTower(id)
	}
}

func (g *GameState) handleArenaClick(x, y int) {
	if g.game.Selected() != "" {
		if _, err := g.game.PlaceSelectedAtPixel(float64(x), float64(y)); err != nil {
			logger.Log.WithError(err).Debug("placement failed")
		}
		return
	}
	if e, ok := hud.EnemyAt(g.snap, float64(x), float64(y), config.EnemyRadius*1.5); ok {
		if def, err := g.game.Catalog.Enemy(e.EnemyID); err == nil {
			g.infoPanel.ShowEnemy(e, def)
		}
		return
	}
	if id, ok := g.game.TowerAtPixel(float64(x), float64(y)); ok {
		for _, t := range g.snap.Towers {
			if t.InstanceID != id {
				continue
			}
			if def, err := g.game.Catalog.Tower(t.TowerID); err == nil {
				g.infoPanel.ShowTower(def)
			}
		}
		return
	}
	g.infoPanel.Hide()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.drawArena(screen)
	g.drawHUD(screen)
	g.infoPanel.Draw(screen)
	if g.snap.GameOver {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawArena(screen *ebiten.Image) {
	for x := gridStep; x < config.ArenaWidth; x += gridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), config.ArenaHeight, 1, config.GridColor, false)
	}
	for y := gridStep; y < config.ArenaHeight; y += gridStep {
		vector.StrokeLine(screen, 0, float32(y), config.ArenaWidth, float32(y), 1, config.GridColor, false)
	}
	dangerTop := float32(config.ArenaHeight * config.DangerZoneY / 100)
	vector.DrawFilledRect(screen, 0, dangerTop, config.ArenaWidth, config.ArenaHeight-dangerTop, config.DangerZoneColor, false)

	arena := g.snap.Arena
	if !arena.Valid() {
		return
	}

	for _, t := range g.snap.Towers {
		px, py := arena.ToPixel(t.Position)
		x, y := float32(px), float32(py)
		vector.DrawFilledCircle(screen, x, y, float32(t.Range), config.RangeColor, true)

		fill := render.ColorOr(t.Color, config.TowerStrokeColor)
		if !t.Ready {
			fill = render.DarkenColor(fill)
		}
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, fill, true)
		vector.StrokeCircle(screen, x, y, config.TowerRadius, config.StrokeWidth, config.TowerStrokeColor, true)
		g.drawCentered(screen, t.Symbol, x, y, config.TextDarkColor)
	}

	now := time.Now()
	g.beams.Each(now, func(b hud.Beam, alpha uint8) {
		x0, y0 := arena.ToPixel(b.From)
		x1, y1 := arena.ToPixel(b.To)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, render.WithAlpha(config.BeamColor, alpha), true)
	})

	for _, e := range g.snap.Enemies {
		px, py := arena.ToPixel(e.Position)
		x, y := float32(px), float32(py)
		vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, render.ColorOr(e.Color, config.GameOverColor), true)
		if len(e.Effects) > 0 {
			vector.StrokeCircle(screen, x, y, config.EnemyRadius+3, 1, config.SelectedColor, true)
		}

		ratio := hud.HealthRatio(e.Health, config.EnemyHealth)
		barX := x - config.HealthBarWidth/2
		barY := y - config.EnemyRadius - 8
		vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, color.Black, false)
		vector.DrawFilledRect(screen, barX, barY, float32(config.HealthBarWidth*ratio), config.HealthBarHeight,
			render.HealthColor(ratio, config.HealthLowColor, config.HealthGoodColor), false)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	top := float32(config.ArenaHeight)
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, config.HUDHeight, config.PanelColor, false)
	vector.StrokeLine(screen, 0, top, config.ScreenWidth, top, 1, config.GridColor, false)

	health := g.snap.NetworkHealth / config.InitialNetworkHealth
	g.healthMeter.Draw(screen, health, fmt.Sprintf("%.0f", g.snap.NetworkHealth),
		render.HealthColor(health, config.HealthLowColor, config.HealthGoodColor))

	budgetRatio := 0.0
	if g.snap.InitialBudget > 0 {
		budgetRatio = float64(g.snap.Budget) / float64(g.snap.InitialBudget)
	}
	g.budgetMeter.Draw(screen, budgetRatio, render.FormatBudget(g.snap.Budget), config.BudgetColor)

	g.indicator.Draw(screen, g.snap.Phase)
	g.towerBar.Draw(screen, g.snap.Selected, g.snap.Budget)

	if g.face != nil {
		text.Draw(screen, hud.StatusLine(g.snap), g.face, 520, int(top)+24, config.TextLightColor)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ArenaHeight, color.RGBA{0, 0, 0, 160}, false)
	if g.titleFace == nil {
		return
	}
	cx, cy := float32(config.ScreenWidth/2), float32(config.ArenaHeight/2)
	g.drawCenteredFace(screen, g.titleFace, "NETWORK COMPROMISED", cx, cy-30, config.GameOverColor)
	g.drawCenteredFace(screen, g.face, g.snap.Reason, cx, cy+6, config.TextLightColor)
	g.drawCenteredFace(screen, g.face, "Press SPACE to restart", cx, cy+36, config.TextLightColor)
}

func (g *GameState) drawCentered(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	g.drawCenteredFace(screen, g.face, s, x, y, clr)
}

func (g *GameState) drawCenteredFace(screen *ebiten.Image, face font.Face, s string, x, y float32, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, int(x)-b.Dx()/2, int(y)+b.Dy()/2, clr)
}

func (g *GameState) Exit() {}
