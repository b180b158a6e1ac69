// internal/state/pause_state.go
package state

import (
	"rtd-tower-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the session. The frame clock does not advance while paused.
type PauseState struct {
	sm       *StateMachine
	previous *PlayState
}

func NewPauseState(sm *StateMachine, previous *PlayState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		// возврат без Enter, чтобы музыка не перезапускалась
		s.sm.current = s.previous
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	ui.DrawPauseOverlay(screen, s.previous.fonts.Title)
}

func (s *PauseState) Exit() {}
