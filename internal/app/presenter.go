// internal/app/presenter.go
package app

import (
	"fmt"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
)

// Тексты интерфейса, общие для обоих фронтендов.

// WaveTitle is drawn centered at the top of the screen.
func (g *Game) WaveTitle() string {
	return fmt.Sprintf("Wave: %d", g.Wave)
}

// HUDLines returns the status lines of the left HUD column.
func (g *Game) HUDLines() []string {
	return []string{
		fmt.Sprintf("HP: %d", g.DisplayHealth()),
		fmt.Sprintf("Currency: %d", g.Currency()),
		fmt.Sprintf("Enemies left: %d", g.AliveEnemies()),
	}
}

// PointerLine shows the pointer position.
func PointerLine(x, y int) string {
	return fmt.Sprintf("Mouse: %d, %d", x, y)
}

// TurretInfoLines describes a turret for the hover panel.
func TurretInfoLines(t *component.Turret) []string {
	return []string{
		fmt.Sprintf("Speed: %d", t.Speed),
		fmt.Sprintf("Damage: %d", t.Damage),
		fmt.Sprintf("Range: %d", t.Range),
		fmt.Sprintf("Price: %d", t.Price),
	}
}

// EndLines returns the headline and the wave line of the end screen.
func (g *Game) EndLines() (title, detail string) {
	if g.Outcome == component.OutcomeWon {
		title = "You've won!"
	} else {
		title = "You've lost!"
	}
	if g.Wave < config.WinWave {
		detail = fmt.Sprintf("Losing wave: %d", g.Wave)
	} else {
		detail = fmt.Sprintf("Beaten waves: %d", g.Wave)
	}
	return title, detail
}

// HealthBarWidth is the pixel width of an enemy health bar, truncated.
func (g *Game) HealthBarWidth(e *component.Enemy) int {
	return int(float64(config.HealthBarWidth) * g.EnemyHealthFraction(e))
}
