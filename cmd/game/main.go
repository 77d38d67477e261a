// cmd/game/main.go
package main

import (
	"flag"
	"time"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/state"
	"cyber-tower-defense/pkg/logger"
	"cyber-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	startFromGame := flag.Bool("skip-menu", false, "open the console directly")
	flag.Parse()

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

	titleFace, err := render.NewFace(22)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load font")
	}
	face, err := render.NewFace(13)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load font")
	}

	sm := state.NewStateMachine()
	if *startFromGame {
		sm.SetState(state.NewGameState(sm, game, titleFace, face))
	} else {
		sm.SetState(state.NewMenuState(sm, game, titleFace, face))
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cyber Tower Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Log.WithError(err).Fatal("game loop failed")
	}
}
