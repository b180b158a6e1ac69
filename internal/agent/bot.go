// internal/agent/bot.go
package agent

import (
	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Bot plays a session without a pointer: every Interval frames it buys
// the cheapest upgrade it can afford while keeping Reserve currency.
type Bot struct {
	Interval int
	Reserve  int

	frame int
}

func NewBot(interval, reserve int) *Bot {
	if interval < 1 {
		interval = 1
	}
	return &Bot{Interval: interval, Reserve: reserve}
}

// Act makes at most one purchase. It reports whether an upgrade went through.
func (b *Bot) Act(g *app.Game) bool {
	b.frame++
	if g.IsOver() || b.frame%b.Interval != 0 {
		return false
	}

	index := g.CheapestUpgrade()
	if index < 0 {
		return false
	}
	price := g.Turrets[index].Price
	if g.Currency()-price < b.Reserve {
		return false
	}
	if err := g.UpgradeTurret(index); err != nil {
		logger.Log.WithFields(logrus.Fields{"turret": index, "error": err}).Debug("Bot upgrade failed")
		return false
	}
	return true
}

// Result — итог прогона сессии.
type Result struct {
	Frames   int
	Wave     int
	Health   int
	Currency int
	Outcome  component.Outcome
	Stats    app.Stats
}

// Run alternates bot decisions and frames until the session ends or maxFrames pass.
// maxFrames <= 0 means no limit.
func Run(g *app.Game, b *Bot, maxFrames int) Result {
	frames := 0
	for !g.IsOver() && (maxFrames <= 0 || frames < maxFrames) {
		if b != nil {
			b.Act(g)
		}
		g.Update()
		frames++
	}
	return Result{
		Frames:   frames,
		Wave:     g.Wave,
		Health:   g.DisplayHealth(),
		Currency: g.Currency(),
		Outcome:  g.Outcome,
		Stats:    *g.Stats,
	}
}
