// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/system"
	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrNoTurret — в слоте нет башни.
var ErrNoTurret = errors.New("no turret in slot")

// HandleClick requests an upgrade of every turret under the pointer.
// Overlapping hit boxes upgrade each turret in slot order. Clicks after the end are ignored.
// Returns how many upgrades went through.
func (g *Game) HandleClick(x, y int) int {
	if g.IsOver() {
		return 0
	}
	upgraded := 0
	for i := range g.Turrets {
		t := &g.Turrets[i]
		if !system.PositionOnTurret(x, y, t) {
			continue
		}
		if err := g.UpgradeTurret(i); err == nil {
			upgraded++
		}
	}
	return upgraded
}

// UpgradeTurret upgrades the turret in slot index.
func (g *Game) UpgradeTurret(index int) error {
	if index < 0 || index >= len(g.Turrets) {
		return fmt.Errorf("%w: %d", ErrNoTurret, index)
	}
	err := g.TowerSystem.Upgrade(index, &g.Turrets[index])
	if err != nil && !errors.Is(err, system.ErrInsufficientCurrency) {
		logger.Log.WithFields(logrus.Fields{"turret": index, "error": err}).Warn("Upgrade rejected")
	}
	return err
}

// TurretAt returns the first turret whose hit box contains the point.
func (g *Game) TurretAt(x, y int) (*component.Turret, bool) {
	for i := range g.Turrets {
		if system.PositionOnTurret(x, y, &g.Turrets[i]) {
			return &g.Turrets[i], true
		}
	}
	return nil, false
}

// CheapestUpgrade returns the slot whose next upgrade costs the least, or -1 without turrets.
func (g *Game) CheapestUpgrade() int {
	best := -1
	for i := range g.Turrets {
		if best < 0 || g.Turrets[i].Price < g.Turrets[best].Price {
			best = i
		}
	}
	return best
}
