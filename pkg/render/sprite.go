// pkg/render/sprite.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawCentered draws img scaled to a size x size square centered on (x, y).
func DrawCentered(screen, img *ebiten.Image, x, y, size int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x-size/2), float64(y-size/2))
	screen.DrawImage(img, op)
}

// DrawFullscreen stretches img over the whole screen.
func DrawFullscreen(screen, img *ebiten.Image) {
	if img == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(img, op)
}
