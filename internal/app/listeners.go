// internal/app/listeners.go
package app

import (
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/event"
	"rtd-tower-defense/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// soundListener maps session events to sound effects.
type soundListener struct {
	sounds interfaces.SoundPlayer
	ui     *uiSounds
}

// OnEvent реализует интерфейс event.Listener.
func (l *soundListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyLeaked:
		l.play(l.ui.Leak)
	case event.TurretFired:
		if data, ok := e.Data.(event.TurretData); ok && data.Turret != nil {
			l.play(data.Turret.Sound)
		}
	case event.TurretUpgraded:
		l.play(l.ui.Confirm)
	case event.UpgradeDenied:
		l.play(l.ui.Deny)
	case event.GameEnded:
		if data, ok := e.Data.(event.GameEndedData); ok {
			if data.Outcome == component.OutcomeWon {
				l.play(l.ui.Win)
			} else {
				l.play(l.ui.Lose)
			}
		}
	}
}

func (l *soundListener) play(handle component.SoundHandle) {
	if handle == nil {
		return
	}
	l.sounds.Play(handle)
}

// Stats — счётчики сессии, собираются из событий.
type Stats struct {
	Kills          int
	Leaks          int
	ShotsFired     int
	Upgrades       int
	DeniedUpgrades int
	WavesCleared   int
	Earned         int // награда за убийства и бонусы волн
	Spent          int
}

// OnEvent реализует интерфейс event.Listener.
func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.Kills++
		if data, ok := e.Data.(event.EnemyData); ok {
			s.Earned += data.Reward
		}
	case event.EnemyLeaked:
		s.Leaks++
	case event.TurretFired:
		s.ShotsFired++
	case event.TurretUpgraded:
		s.Upgrades++
		if data, ok := e.Data.(event.TurretData); ok {
			s.Spent += data.Price
		}
	case event.UpgradeDenied:
		s.DeniedUpgrades++
	case event.WaveCleared:
		s.WavesCleared++
		if data, ok := e.Data.(event.WaveData); ok {
			s.Earned += data.Bonus
		}
	}
}

// Fields returns the counters as log fields.
func (s *Stats) Fields() logrus.Fields {
	return logrus.Fields{
		"kills":         s.Kills,
		"leaks":         s.Leaks,
		"shots":         s.ShotsFired,
		"upgrades":      s.Upgrades,
		"denied":        s.DeniedUpgrades,
		"waves_cleared": s.WavesCleared,
		"earned":        s.Earned,
		"spent":         s.Spent,
	}
}
