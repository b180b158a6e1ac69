// internal/ui/end_screen.go
package ui

import (
	"rtd-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// EndScreen — чёрный экран с итогом партии.
type EndScreen struct {
	titleFace  font.Face
	detailFace font.Face
}

func NewEndScreen(titleFace, detailFace font.Face) *EndScreen {
	return &EndScreen{titleFace: titleFace, detailFace: detailFace}
}

func (s *EndScreen) Draw(screen *ebiten.Image, title, detail string) {
	screen.Fill(config.EndScreenColor)
	drawCentered(screen, title, s.titleFace, config.ScreenHeight/2-50)
	drawCentered(screen, detail, s.detailFace, config.ScreenHeight/2+50)
}

// drawCentered draws str with its box centered on (ScreenWidth/2, centerY).
func drawCentered(screen *ebiten.Image, str string, face font.Face, centerY int) {
	b := text.BoundString(face, str)
	x := config.ScreenWidth/2 - b.Dx()/2 - b.Min.X
	y := centerY - b.Dy()/2 - b.Min.Y
	text.Draw(screen, str, face, x, y, config.EndTextColor)
}
