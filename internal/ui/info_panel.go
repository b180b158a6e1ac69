// internal/ui/info_panel.go
package ui

import (
	"rtd-tower-defense/internal/app"
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const panelPadding = 8

// InfoPanel shows the stats of the turret under the pointer and its range.
type InfoPanel struct {
	fontFace font.Face
}

func NewInfoPanel(fontFace font.Face) *InfoPanel {
	return &InfoPanel{fontFace: fontFace}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, t *component.Turret) {
	if t == nil {
		return
	}

	// радиус атаки
	vector.StrokeCircle(screen, float32(t.Position.X), float32(t.Position.Y), float32(t.Range), 2, config.RangeColor, true)
	vector.StrokeRect(screen,
		float32(t.Position.X-config.TurretHalfSize), float32(t.Position.Y-config.TurretHalfSize),
		config.TurretSize, config.TurretSize, 2, render.DarkenColor(config.RangeColor), false)

	lines := app.TurretInfoLines(t)
	width := 0
	for _, line := range lines {
		if w := text.BoundString(p.fontFace, line).Dx(); w > width {
			width = w
		}
	}
	x := config.ScreenWidth - width - config.HUDMarginX - panelPadding*2
	height := config.InfoLineStep*len(lines) + panelPadding
	vector.DrawFilledRect(screen, float32(x), float32(config.InfoLineY-panelPadding),
		float32(width+panelPadding*2), float32(height), config.PanelColor, false)

	y := config.InfoLineY
	for _, line := range lines {
		b := text.BoundString(p.fontFace, line)
		text.Draw(screen, line, p.fontFace, x+panelPadding, y-b.Min.Y, config.TextDarkColor)
		y += config.InfoLineStep
	}
}
