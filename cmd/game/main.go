// cmd/game/main.go
package main

import (
	"errors"
	"flag"

	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/internal/assets/ebitenassets"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/state"
	"rtd-tower-defense/internal/ui"
	"rtd-tower-defense/internal/utils"
	"rtd-tower-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "seed for enemy spawn jitter, 0 uses the clock")
	levelPath := flag.String("level", "", "JSON level file, empty for the built-in level")
	assetRoot := flag.String("assets", ".", "directory containing the assets/ folder")
	flag.Parse()

	logger.Init()

	audioCfg, err := assets.LoadAudioConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid audio configuration")
	}
	level, err := defs.ResolveLevel(*levelPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load level")
	}

	manager := ebitenassets.NewManager(*assetRoot, audioCfg)
	game, err := app.NewGame(level, manager, manager, utils.NewPRNGService(*seed))
	if err != nil {
		logger.Log.WithError(err).Fatal("Game init failed")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game, manager, ui.LoadFonts(*assetRoot)))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond(game.Wave, false))

	runErr := ebiten.RunGame(&AppGame{stateMachine: sm})

	manager.StopMusic()
	game.Close()
	images, sounds := manager.Outstanding()
	logger.Log.WithFields(logrus.Fields{"images": images, "sounds": sounds}).Debug("Assets still held after teardown")

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		logger.Log.WithError(runErr).Fatal("Game loop failed")
	}
}
