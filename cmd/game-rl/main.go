package main

import (
	"fmt"
	"time"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/hud"
	"cyber-tower-defense/internal/ui"
	"cyber-tower-defense/pkg/logger"
	"cyber-tower-defense/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var digitKeys = []int32{
	rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
	rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

// viewer — raylib-версия консоли: та же арена и HUD, что и в ebiten.
type viewer struct {
	game      *app.Game
	font      rl.Font
	indicator *ui.StateIndicatorRL
	session   *ui.SessionButtonRL
	health    *ui.NetworkHealthIndicatorRL
	budget    *ui.BudgetIndicatorRL
	buttons   []*ui.Button
	towerIDs  []string
	beams     *hud.BeamTracker
	snap      app.Snapshot
}

func newViewer(game *app.Game, font rl.Font) *viewer {
	top := float32(config.ArenaHeight)
	v := &viewer{
		game:      game,
		font:      font,
		indicator: ui.NewStateIndicatorRL(config.ScreenWidth-config.IndicatorOffsetX, top+config.IndicatorOffsetX, config.IndicatorRadius),
		session:   ui.NewSessionButtonRL(config.ScreenWidth-80, top+config.IndicatorOffsetX, 9, config.IdleStateColor, config.RunningStateColor),
		health:    ui.NewNetworkHealthIndicatorRL(20, top+30),
		budget:    ui.NewBudgetIndicatorRL(240, top+14, 26),
		beams:     hud.NewBeamTracker(config.BeamLifetime),
	}

	towers := game.Catalog.Towers()
	slots := render.Row(len(towers), 420, config.ArenaHeight+52, config.ScreenWidth-540, 40, 6)
	for i, def := range towers {
		r := slots[i]
		label := render.Abbreviate(def.Symbol, 4)
		if i < len(digitKeys) {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		b := ui.NewButton(rl.NewRectangle(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())), label, font)
		b.BgColor = ui.ColorToRL(render.ColorOr(def.Color, config.TowerStrokeColor))
		b.HoverColor = ui.ColorToRL(render.DarkenColor(render.ColorOr(def.Color, config.TowerStrokeColor)))
		v.buttons = append(v.buttons, b)
		v.towerIDs = append(v.towerIDs, def.ID)
	}
	return v
}

func (v *viewer) update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.game.Toggle()
		v.indicator.HandleClick()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		v.game.Deselect()
	}
	for i, key := range digitKeys {
		if i < len(v.towerIDs) && rl.IsKeyPressed(key) {
			v.selectTower(v.towerIDs[i])
		}
	}

	v.game.Update()
	v.snap = v.game.Snapshot()
	v.beams.Observe(v.snap, time.Now())

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		v.handleClick(mouse)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) && mouse.Y < config.ArenaHeight {
		v.game.RemoveTowerAtPixel(float64(mouse.X), float64(mouse.Y))
	}
}

func (v *viewer) selectTower(id string) {
	if v.game.Selected() == id {
		v.game.Deselect()
		return
	}
	if err := v.game.SelectDefinition(id); err != nil {
		logger.Log.WithError(err).Debug("select failed")
	}
}

func (v *viewer) handleClick(mouse rl.Vector2) {
	if mouse.Y < config.ArenaHeight {
		if v.game.Selected() == "" {
			return
		}
		if _, err := v.game.PlaceSelectedAtPixel(float64(mouse.X), float64(mouse.Y)); err != nil {
			logger.Log.WithError(err).Debug("placement failed")
		}
		return
	}
	if v.indicator.IsClicked(mouse) || v.session.IsClicked(mouse) {
		v.game.Toggle()
		v.indicator.HandleClick()
		v.session.HandleClick()
		return
	}
	for i, b := range v.buttons {
		if b.IsClicked(mouse) {
			v.selectTower(v.towerIDs[i])
			return
		}
	}
}

func (v *viewer) draw() {
	rl.ClearBackground(ui.ColorToRL(config.BackgroundColor))
	v.drawArena()
	v.drawHUD()
	if v.snap.GameOver {
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ArenaHeight, rl.NewColor(0, 0, 0, 160))
		v.drawCentered("NETWORK COMPROMISED", config.ArenaHeight/2-30, 32, ui.ColorToRL(config.GameOverColor))
		v.drawCentered(v.snap.Reason, config.ArenaHeight/2+10, 20, rl.White)
		v.drawCentered("Press SPACE to restart", config.ArenaHeight/2+40, 20, rl.White)
	}
}

func (v *viewer) drawArena() {
	grid := ui.ColorToRL(config.GridColor)
	for x := int32(50); x < config.ArenaWidth; x += 50 {
		rl.DrawLine(x, 0, x, config.ArenaHeight, grid)
	}
	for y := int32(50); y < config.ArenaHeight; y += 50 {
		rl.DrawLine(0, y, config.ArenaWidth, y, grid)
	}
	dangerTop := float32(config.ArenaHeight * config.DangerZoneY / 100)
	rl.DrawRectangleV(rl.NewVector2(0, dangerTop), rl.NewVector2(config.ArenaWidth, config.ArenaHeight-dangerTop), ui.ColorToRL(config.DangerZoneColor))

	arena := v.snap.Arena
	if !arena.Valid() {
		return
	}

	for _, t := range v.snap.Towers {
		px, py := arena.ToPixel(t.Position)
		center := rl.NewVector2(float32(px), float32(py))
		rl.DrawCircleV(center, float32(t.Range), ui.ColorToRL(config.RangeColor))

		fill := render.ColorOr(t.Color, config.TowerStrokeColor)
		if !t.Ready {
			fill = render.DarkenColor(fill)
		}
		rl.DrawCircleV(center, config.TowerRadius, ui.ColorToRL(fill))
		rl.DrawCircleLines(int32(px), int32(py), config.TowerRadius, rl.White)
		w := rl.MeasureText(t.Symbol, 10)
		rl.DrawText(t.Symbol, int32(px)-w/2, int32(py)-5, 10, ui.ColorToRL(config.TextDarkColor))
	}

	v.beams.Each(time.Now(), func(b hud.Beam, alpha uint8) {
		x0, y0 := arena.ToPixel(b.From)
		x1, y1 := arena.ToPixel(b.To)
		rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), 2,
			ui.ColorToRL(render.WithAlpha(config.BeamColor, alpha)))
	})

	for _, e := range v.snap.Enemies {
		px, py := arena.ToPixel(e.Position)
		rl.DrawCircleV(rl.NewVector2(float32(px), float32(py)), config.EnemyRadius, ui.ColorToRL(render.ColorOr(e.Color, config.GameOverColor)))

		ratio := hud.HealthRatio(e.Health, config.EnemyHealth)
		barX := float32(px) - config.HealthBarWidth/2
		barY := float32(py) - config.EnemyRadius - 8
		rl.DrawRectangleV(rl.NewVector2(barX, barY), rl.NewVector2(config.HealthBarWidth, config.HealthBarHeight), rl.Black)
		rl.DrawRectangleV(rl.NewVector2(barX, barY), rl.NewVector2(float32(config.HealthBarWidth*ratio), config.HealthBarHeight),
			ui.ColorToRL(render.HealthColor(ratio, config.HealthLowColor, config.HealthGoodColor)))
	}
}

func (v *viewer) drawHUD() {
	rl.DrawRectangle(0, config.ArenaHeight, config.ScreenWidth, config.HUDHeight, ui.ColorToRL(config.PanelColor))

	v.health.Draw(v.snap.NetworkHealth, config.InitialNetworkHealth)
	v.budget.Draw(v.snap.Budget, v.snap.InitialBudget, v.font)
	v.indicator.Draw(v.snap.Phase)
	v.session.Draw(v.snap.Phase == component.Running)

	mouse := rl.GetMousePosition()
	for i, b := range v.buttons {
		b.Selected = v.towerIDs[i] == v.snap.Selected
		if def, err := v.game.Catalog.Tower(v.towerIDs[i]); err == nil {
			b.Disabled = def.Cost > v.snap.Budget
		}
		b.Draw(mouse)
	}
	rl.DrawText(hud.StatusLine(v.snap), 420, config.ArenaHeight+20, 16, rl.White)
}

func (v *viewer) drawCentered(s string, y int32, size int32, c rl.Color) {
	w := rl.MeasureText(s, size)
	rl.DrawText(s, (config.ScreenWidth-w)/2, y, size, c)
}

func main() {
	settings, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	logger.Init(settings.LogLevel, settings.LogFormat)

	catalog, err := defs.OpenCatalog(settings.CatalogDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load catalog")
	}
	opts := app.OptionsFromSettings(settings, catalog)
	opts.Arena = component.Arena{Width: config.ArenaWidth, Height: config.ArenaHeight}
	game, err := app.NewGame(opts)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create game")
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Cyber Tower Defense | Space - start/stop, 1-9 - select")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	v := newViewer(game, rl.GetFontDefault())
	for !rl.WindowShouldClose() {
		v.update()

		rl.BeginDrawing()
		v.draw()
		rl.EndDrawing()
	}
}
