// cmd/simulate/main.go
package main

import (
	"flag"

	"rtd-tower-defense/internal/agent"
	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/utils"
	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Прогон без окна и звука: ассеты подменены MemoryStore, кликает бот.
func main() {
	seed := flag.Int64("seed", 1, "seed for enemy spawn jitter, 0 uses the clock")
	levelPath := flag.String("level", "", "JSON level file, empty for the built-in level")
	frames := flag.Int("frames", 0, "stop after this many frames, 0 runs until the game ends")
	interval := flag.Int("interval", 1, "frames between bot decisions")
	reserve := flag.Int("reserve", 0, "currency the bot never spends")
	noBot := flag.Bool("nobot", false, "run without upgrades")
	flag.Parse()

	logger.Init()

	level, err := defs.ResolveLevel(*levelPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load level")
	}

	store := assets.NewMemoryStore()
	game, err := app.NewGame(level, store, store, utils.NewPRNGService(*seed))
	if err != nil {
		logger.Log.WithError(err).Fatal("Game init failed")
	}

	var bot *agent.Bot
	if !*noBot {
		bot = agent.NewBot(*interval, *reserve)
	}
	res := agent.Run(game, bot, *frames)
	game.Close()

	logger.Log.WithFields(logrus.Fields{
		"seed":     game.Rng.Seed(),
		"frames":   res.Frames,
		"wave":     res.Wave,
		"health":   res.Health,
		"currency": res.Currency,
		"outcome":  res.Outcome.String(),
	}).WithFields(res.Stats.Fields()).Info("Simulation finished")

	if store.Outstanding() != 0 || store.DoubleReleases() != 0 {
		logger.Log.WithFields(logrus.Fields{
			"outstanding":     store.Outstanding(),
			"double_releases": store.DoubleReleases(),
		}).Error("Asset handles not balanced")
	}
}
