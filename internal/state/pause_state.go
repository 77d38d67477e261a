// internal/state/pause_state.go
package state

import (
	"image/color"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает сессию и рисует поверх предыдущего состояния.
// Leaving it resumes the session only if pausing stopped it; Enter leaves
// with the session stopped.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          *app.Game
	face          font.Face
	pause         *app.Pause
}

func NewPauseState(sm *StateMachine, prevState State, game *app.Game, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
		face:          face,
	}
}

func (s *PauseState) Enter() {
	s.pause = s.game.Pause()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.pause.End()
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	if s.face == nil {
		return
	}
	pauseText := "PAUSED"
	b := text.BoundString(s.face, pauseText)
	text.Draw(screen, pauseText, s.face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, color.White)

	hint := "P - resume, Enter - stop session"
	hb := text.BoundString(s.face, hint)
	text.Draw(screen, hint, s.face, (config.ScreenWidth-hb.Dx())/2, config.ScreenHeight/2+b.Dy()+12, color.White)
}

func (s *PauseState) Exit() {
	if s.pause != nil {
		s.pause.Resume()
	}
}
