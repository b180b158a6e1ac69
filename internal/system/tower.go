// internal/system/tower.go
package system

import (
	"errors"
	"fmt"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/event"
	"rtd-tower-defense/internal/interfaces"
	"rtd-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInsufficientCurrency — на улучшение не хватает валюты.
	ErrInsufficientCurrency = errors.New("insufficient currency")
	// ErrUnknownTier — у башни нет правила улучшения.
	ErrUnknownTier = errors.New("turret tier cannot be upgraded")
)

// upgradeRule describes one transition of the turret upgrade state machine.
type upgradeRule struct {
	next  component.Tier
	price func(price int) int
	apply func(t *component.Turret)
}

func scalePrice(factor float64) func(int) int {
	return func(price int) int { return int(float64(price) * factor) }
}

func fixedPrice(value int) func(int) int {
	return func(int) int { return value }
}

func noStats(*component.Turret) {}

var upgradeRules = map[component.Tier]upgradeRule{
	// электрическая ветка
	component.TierElectricBase: {next: component.TierElectric1, price: scalePrice(1.5), apply: noStats},
	component.TierElectric1: {next: component.TierElectric2, price: scalePrice(1.5), apply: func(t *component.Turret) {
		t.Speed /= 2
	}},
	component.TierElectric2: {next: component.TierElectric3, price: fixedPrice(50), apply: func(t *component.Turret) {
		t.Speed += 2
		t.Range += 20
		t.Damage += 10
	}},
	component.TierElectric3: {next: component.TierElectric3, price: scalePrice(2), apply: func(t *component.Turret) {
		t.Damage = int(float64(t.Damage) * 1.2)
	}},
	// снайперская ветка
	component.TierSniperBase: {next: component.TierSniper1, price: scalePrice(2), apply: noStats},
	component.TierSniper1: {next: component.TierSniper2, price: scalePrice(1.5), apply: func(t *component.Turret) {
		t.Damage *= 2
	}},
	component.TierSniper2: {next: component.TierSniper3, price: fixedPrice(100), apply: func(t *component.Turret) {
		t.Damage = int(float64(t.Damage) * 1.5)
		t.Range += 100
		t.Speed -= 2
	}},
	component.TierSniper3: {next: component.TierSniper3, price: scalePrice(2), apply: func(t *component.Turret) {
		t.Damage = int(float64(t.Damage) * 1.1)
	}},
}

// TowerSystem owns turret upgrades and pointer hit tests.
type TowerSystem struct {
	game            interfaces.GameContext
	loader          interfaces.AssetLoader
	sounds          interfaces.SoundPlayer
	eventDispatcher *event.Dispatcher
}

func NewTowerSystem(game interfaces.GameContext, loader interfaces.AssetLoader, sounds interfaces.SoundPlayer, eventDispatcher *event.Dispatcher) *TowerSystem {
	return &TowerSystem{
		game:            game,
		loader:          loader,
		sounds:          sounds,
		eventDispatcher: eventDispatcher,
	}
}

// NewTurret builds a turret for a level slot and loads its base visual.
// A missing visual is not fatal, the turret simply has no sprite.
func (s *TowerSystem) NewTurret(slot defs.TurretSlot) component.Turret {
	t := component.Turret{
		Position: component.Position{X: slot.X, Y: slot.Y},
		Speed:    slot.Speed,
		Tier:     slot.Tier,
		Damage:   slot.Damage,
		Range:    slot.Range,
		Price:    slot.Price,
	}
	t.Visual = s.loadVisual(defs.TierDefs[t.Tier].VisualPath)
	return t
}

// Upgrade applies the next transition if the player can pay for it.
// On failure a deny event is dispatched and the turret is left untouched.
func (s *TowerSystem) Upgrade(index int, t *component.Turret) error {
	rule, ok := upgradeRules[t.Tier]
	if !ok {
		s.deny(index, t)
		return fmt.Errorf("%w: tier %d", ErrUnknownTier, t.Tier)
	}
	if s.game.Currency() < t.Price {
		s.deny(index, t)
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientCurrency, s.game.Currency(), t.Price)
	}

	paid := t.Price
	s.game.SpendCurrency(paid)
	from := t.Tier
	t.Tier = rule.next
	t.Price = rule.price(t.Price)
	rule.apply(t)
	if !from.IsFinal() {
		s.swapAssets(t)
	}

	logger.Log.WithFields(logrus.Fields{
		"turret": index,
		"branch": t.Tier.Branch(),
		"from":   from,
		"tier":   t.Tier,
		"paid":   paid,
		"price":  t.Price,
	}).Info("Turret upgraded")

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TurretUpgraded,
		Data: event.TurretData{Index: index, Turret: t, Tier: t.Tier, Price: paid},
	})
	return nil
}

func (s *TowerSystem) deny(index int, t *component.Turret) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UpgradeDenied,
		Data: event.TurretData{Index: index, Turret: t, Tier: t.Tier, Price: t.Price},
	})
}

// swapAssets releases the old sprite and shot sound before loading the tier ones.
func (s *TowerSystem) swapAssets(t *component.Turret) {
	def := defs.TierDefs[t.Tier]

	if t.Visual != nil {
		s.loader.ReleaseVisual(t.Visual)
		t.Visual = nil
	}
	if t.Sound != nil {
		s.sounds.ReleaseSound(t.Sound)
		t.Sound = nil
	}

	t.Visual = s.loadVisual(def.VisualPath)
	if def.SoundPath != "" {
		sound, err := s.sounds.LoadSound(def.SoundPath)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{"path": def.SoundPath, "error": err}).Warn("Turret sound not loaded")
		} else {
			t.Sound = sound
		}
	}
}

func (s *TowerSystem) loadVisual(path string) component.VisualHandle {
	if path == "" {
		return nil
	}
	visual, err := s.loader.LoadVisual(path)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("Turret visual not loaded")
		return nil
	}
	return visual
}

// PositionOnTurret reports whether the pointer lies in the 40x40 square around the turret.
func PositionOnTurret(pointerX, pointerY int, t *component.Turret) bool {
	return pointerX >= t.Position.X-config.TurretHalfSize && pointerX <= t.Position.X+config.TurretHalfSize &&
		pointerY >= t.Position.Y-config.TurretHalfSize && pointerY <= t.Position.Y+config.TurretHalfSize
}
