// internal/state/menu_state.go
package state

import (
	"fmt"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — заставка перед началом сессии
type MenuState struct {
	sm        *StateMachine
	game      *app.Game
	titleFace font.Face
	face      font.Face
}

func NewMenuState(sm *StateMachine, game *app.Game, titleFace, face font.Face) *MenuState {
	return &MenuState{sm: sm, game: game, titleFace: titleFace, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.game, m.titleFace, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if m.face == nil {
		return
	}
	title := "CYBER TOWER DEFENSE"
	b := text.BoundString(m.titleFace, title)
	text.Draw(screen, title, m.titleFace, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2-40, config.TextLightColor)

	lines := []string{
		fmt.Sprintf("%d defenses, %d threats", len(m.game.Catalog.TowerIDs()), len(m.game.Catalog.EnemyIDs())),
		"Press SPACE to open the console",
	}
	for i, line := range lines {
		b := text.BoundString(m.face, line)
		text.Draw(screen, line, m.face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2+i*24, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
