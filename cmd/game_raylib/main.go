// cmd/game_raylib/main.go
package main

import (
	"flag"
	"image/color"
	"os"

	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/internal/assets/rlassets"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/utils"
	"rtd-tower-defense/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// colorToRL converts color.RGBA to rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func drawSprite(handle interface{}, x, y, size int) {
	tex, ok := handle.(*rl.Texture2D)
	if !ok || tex == nil {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(x-size/2), float32(y-size/2), float32(size), float32(size))
	rl.DrawTexturePro(*tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

func drawCentered(font rl.Font, text string, size float32, centerY float32, c rl.Color) {
	m := rl.MeasureTextEx(font, text, size, 1)
	rl.DrawTextEx(font, text, rl.NewVector2((config.ScreenWidth-m.X)/2, centerY-m.Y/2), size, 1, c)
}

func drawPlay(g *app.Game, font rl.Font, paused bool) {
	rl.ClearBackground(colorToRL(config.BackgroundColor))
	if bg, ok := g.Level.Background.(*rl.Texture2D); ok && bg != nil {
		src := rl.NewRectangle(0, 0, float32(bg.Width), float32(bg.Height))
		dst := rl.NewRectangle(0, 0, config.ScreenWidth, config.ScreenHeight)
		rl.DrawTexturePro(*bg, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}

	for i := range g.Enemies {
		e := &g.Enemies[i]
		if !e.Alive {
			continue
		}
		drawSprite(e.Visual, e.Position.X, e.Position.Y, config.EnemySize)
		if w := g.HealthBarWidth(e); w > 0 {
			rl.DrawRectangle(int32(e.Position.X-config.EnemySize/2), int32(e.Position.Y-config.HealthBarOffset),
				int32(w), config.HealthBarHeight, colorToRL(config.HealthBarColor))
		}
	}
	for i := range g.Turrets {
		t := &g.Turrets[i]
		drawSprite(t.Visual, t.Position.X, t.Position.Y, config.TurretSize)
	}

	dark := colorToRL(config.TextDarkColor)
	drawCentered(font, g.WaveTitle(), config.TitleFontSize, config.HUDMarginY+config.TitleFontSize/2, dark)
	y := float32(config.HUDMarginY)
	for _, line := range g.HUDLines() {
		rl.DrawTextEx(font, line, rl.NewVector2(config.HUDMarginX, y), config.HUDFontSize, 1, dark)
		y += config.HUDLineSpacing
	}

	mx, my := int(rl.GetMouseX()), int(rl.GetMouseY())
	pointer := app.PointerLine(mx, my)
	m := rl.MeasureTextEx(font, pointer, config.SmallFontSize, 1)
	rl.DrawTextEx(font, pointer, rl.NewVector2(config.ScreenWidth-m.X-config.HUDMarginX, config.ScreenHeight-m.Y-config.HUDMarginY),
		config.SmallFontSize, 1, dark)

	if t, ok := g.TurretAt(mx, my); ok {
		rl.DrawCircleLines(int32(t.Position.X), int32(t.Position.Y), float32(t.Range), colorToRL(config.RangeColor))
		y := float32(config.InfoLineY)
		for _, line := range app.TurretInfoLines(t) {
			w := rl.MeasureTextEx(font, line, config.SmallFontSize, 1).X
			rl.DrawTextEx(font, line, rl.NewVector2(config.ScreenWidth-w-config.HUDMarginX, y), config.SmallFontSize, 1, dark)
			y += config.InfoLineStep
		}
	}

	if paused {
		rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 128))
		drawCentered(font, "PAUSED", config.TitleFontSize, config.ScreenHeight/2, rl.White)
	}
}

func drawEnd(g *app.Game, font rl.Font) {
	rl.ClearBackground(colorToRL(config.EndScreenColor))
	title, detail := g.EndLines()
	c := colorToRL(config.EndTextColor)
	drawCentered(font, title, config.EndTitleFontSize, config.ScreenHeight/2-50, c)
	drawCentered(font, detail, config.EndDetailFontSize, config.ScreenHeight/2+50, c)
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

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	if audioCfg.Enabled {
		rl.InitAudioDevice()
		defer rl.CloseAudioDevice()
	}

	volume := audioCfg.Volume
	if !audioCfg.Enabled {
		volume = 0
	}
	loader := rlassets.NewLoader(*assetRoot, volume)
	game, err := app.NewGame(level, loader, loader, utils.NewPRNGService(*seed))
	if err != nil {
		logger.Log.WithError(err).Error("Game init failed")
		rl.CloseWindow()
		os.Exit(1)
	}
	defer game.Close()

	font := rl.GetFontDefault()
	if err := assets.Exists(*assetRoot, defs.FontPath); err == nil {
		font = rl.LoadFont(assets.Resolve(*assetRoot, defs.FontPath))
		defer rl.UnloadFont(font)
	} else {
		logger.Log.WithFields(logrus.Fields{"path": defs.FontPath, "error": err}).Warn("Font not loaded, using the default font")
	}

	if audioCfg.Enabled {
		if err := loader.PlayMusic(defs.MusicTrack); err != nil {
			logger.Log.WithFields(logrus.Fields{"path": defs.MusicTrack, "error": err}).Warn("Music not started")
		}
		defer loader.StopMusic()
	}

	fps := int32(config.TicksPerSecond(game.Wave, false))
	rl.SetTargetFPS(fps)
	paused := false

	for !rl.WindowShouldClose() {
		loader.UpdateMusic()

		if !game.IsOver() {
			if rl.IsKeyPressed(rl.KeyP) {
				paused = !paused
			}
			if !paused {
				if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
					game.HandleClick(int(rl.GetMouseX()), int(rl.GetMouseY()))
				}
				game.Update()
				if game.IsOver() {
					loader.StopMusic()
				}
			}
		}

		if next := int32(config.TicksPerSecond(game.Wave, game.IsOver())); next != fps {
			fps = next
			rl.SetTargetFPS(fps)
		}

		rl.BeginDrawing()
		if game.IsOver() {
			drawEnd(game, font)
		} else {
			drawPlay(game, font, paused)
		}
		rl.EndDrawing()
	}
}
