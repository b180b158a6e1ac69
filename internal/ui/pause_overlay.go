// internal/ui/pause_overlay.go
package ui

import (
	"image/color"

	"rtd-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawPauseOverlay dims the screen and writes PAUSED in the middle.
func DrawPauseOverlay(screen *ebiten.Image, face font.Face) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	drawCentered(screen, "PAUSED", face, config.ScreenHeight/2)
}
