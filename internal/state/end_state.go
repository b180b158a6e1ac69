// internal/state/end_state.go
package state

import (
	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EndState shows the outcome. Pointer input is ignored, only quitting is possible.
type EndState struct {
	sm     *StateMachine
	game   *app.Game
	screen *ui.EndScreen
}

func NewEndState(sm *StateMachine, game *app.Game, fonts *ui.Fonts) *EndState {
	return &EndState{
		sm:     sm,
		game:   game,
		screen: ui.NewEndScreen(fonts.EndTitle, fonts.EndDetail),
	}
}

func (s *EndState) Enter() {
	ebiten.SetTPS(config.TicksPerSecond(s.game.Wave, true))
}

func (s *EndState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (s *EndState) Draw(screen *ebiten.Image) {
	title, detail := s.game.EndLines()
	s.screen.Draw(screen, title, detail)
}

func (s *EndState) Exit() {}
