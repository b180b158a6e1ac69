// internal/component/game_state.go
package component

// Phase — фаза игровой сессии
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEnded
)

// Outcome is only meaningful once the session reached PhaseEnded.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}
