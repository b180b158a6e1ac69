// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1472
	ScreenHeight = 768
	WindowTitle  = "RTD: A Tower Defense!"

	BaseHealth     = 100
	StartCurrency  = 300
	WinWave        = 30 // волна, после которой поражение считается победой
	WaveClearBonus = 10 // валюта за волну: wave * WaveClearBonus

	EnemyReward      = 5
	EnemySpawnY      = 480
	EnemySize        = 40
	ArrivalTolerance = 20 // по каждой оси, строго меньше

	TurretHalfSize = 20 // хитбокс башни 40x40 вокруг центра
	TurretSize     = TurretHalfSize * 2

	HealthBarWidth  = 40
	HealthBarHeight = 5
	HealthBarOffset = 30

	HUDMarginX     = 10
	HUDMarginY     = 10
	HUDLineSpacing = 35
	InfoLineY      = 40
	InfoLineStep   = 30

	// размеры шрифтов в пунктах
	TitleFontSize     = 40
	HUDFontSize       = 30
	SmallFontSize     = 24
	EndTitleFontSize  = 72
	EndDetailFontSize = 48

	SampleRate = 44100
)

var (
	BackgroundColor = color.RGBA{172, 79, 198, 255}
	TextDarkColor   = color.RGBA{0, 0, 0, 255}
	EndTextColor    = color.RGBA{255, 128, 128, 255}
	EndScreenColor  = color.RGBA{0, 0, 0, 255}
	HealthBarColor  = color.RGBA{255, 0, 0, 255}
	RangeColor      = color.RGBA{255, 255, 255, 64}
	PanelColor      = color.RGBA{255, 255, 255, 160}
)

// FrameDelayMillis returns the frame pacing for a wave. Later waves run faster.
func FrameDelayMillis(wave int, gameOver bool) int {
	if gameOver {
		return 16
	}
	switch {
	case wave <= 10:
		return 16
	case wave <= 20:
		return 15
	case wave <= 30:
		return 12
	default:
		return 8
	}
}

// TicksPerSecond converts FrameDelayMillis into a tick rate for the game loop.
func TicksPerSecond(wave int, gameOver bool) int {
	return 1000 / FrameDelayMillis(wave, gameOver)
}
