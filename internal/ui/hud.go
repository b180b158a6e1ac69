// internal/ui/hud.go
package ui

import (
	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD draws the wave title, the status column and the pointer position.
type HUD struct {
	titleFace font.Face
	fontFace  font.Face
	smallFace font.Face
}

func NewHUD(titleFace, fontFace, smallFace font.Face) *HUD {
	return &HUD{titleFace: titleFace, fontFace: fontFace, smallFace: smallFace}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game, cursorX, cursorY int) {
	title := g.WaveTitle()
	bounds := text.BoundString(h.titleFace, title)
	text.Draw(screen, title, h.titleFace, config.ScreenWidth/2-bounds.Dx()/2, config.HUDMarginY-bounds.Min.Y, config.TextDarkColor)

	y := config.HUDMarginY
	for _, line := range g.HUDLines() {
		b := text.BoundString(h.fontFace, line)
		text.Draw(screen, line, h.fontFace, config.HUDMarginX, y-b.Min.Y, config.TextDarkColor)
		y += config.HUDLineSpacing
	}

	pointer := app.PointerLine(cursorX, cursorY)
	b := text.BoundString(h.smallFace, pointer)
	text.Draw(screen, pointer, h.smallFace,
		config.ScreenWidth-b.Dx()-config.HUDMarginX, config.ScreenHeight-config.HUDMarginY, config.TextDarkColor)
}
