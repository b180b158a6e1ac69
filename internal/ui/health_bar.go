// internal/ui/health_bar.go
package ui

import (
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawHealthBar draws the bar above an enemy. width comes from app.Game.HealthBarWidth.
func DrawHealthBar(screen *ebiten.Image, e *component.Enemy, width int) {
	if width <= 0 {
		return
	}
	x := float32(e.Position.X - config.EnemySize/2)
	y := float32(e.Position.Y - config.HealthBarOffset)
	vector.DrawFilledRect(screen, x, y, float32(width), config.HealthBarHeight, config.HealthBarColor, false)
}
