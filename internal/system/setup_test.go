package system

import (
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/event"
)

// fakeGame — минимальная реализация GameContext для тестов систем.
type fakeGame struct {
	wave     int
	currency int
	health   int
}

func newFakeGame(currency int) *fakeGame {
	return &fakeGame{wave: 1, currency: currency, health: 100}
}

func (g *fakeGame) CurrentWave() int         { return g.wave }
func (g *fakeGame) Currency() int            { return g.currency }
func (g *fakeGame) AddCurrency(amount int)   { g.currency += amount }
func (g *fakeGame) SpendCurrency(amount int) { g.currency -= amount }
func (g *fakeGame) DamagePlayer(amount int)  { g.health -= amount }

// eventLog records every dispatched event.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordingDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(log,
		event.EnemyLeaked, event.EnemyKilled, event.TurretFired,
		event.TurretUpgraded, event.UpgradeDenied,
	)
	return d, log
}

func liveEnemy(x, y, health int) component.Enemy {
	return component.Enemy{
		Position: component.Position{X: x, Y: y},
		Speed:    3,
		Health:   health,
		Damage:   1,
		Reward:   5,
		Alive:    true,
	}
}
