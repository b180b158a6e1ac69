// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	// Update returns ebiten.Termination to stop the game loop.
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// MusicPlayer is the part of the asset manager the screens control.
type MusicPlayer interface {
	PlayMusic(path string) error
	StopMusic()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() error {
	if sm.current != nil {
		return sm.current.Update()
	}
	return nil
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
