// internal/defs/level.go
package defs

import (
	"errors"
	"fmt"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
)

// ErrInvalidLevel is returned for a level that cannot start a session.
var ErrInvalidLevel = errors.New("invalid level")

// Waypoint — точка пути в JSON-описании уровня.
type Waypoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TurretSlot describes a turret placed at session start.
type TurretSlot struct {
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Tier   component.Tier `json:"tier"`
	Speed  int            `json:"speed"`
	Damage int            `json:"damage"`
	Range  int            `json:"range"`
	Price  int            `json:"price"`
}

// LevelDefinition holds the static layout of a level.
type LevelDefinition struct {
	Name            string       `json:"name"`
	StartCurrency   int          `json:"start_currency"`
	Path            []Waypoint   `json:"path"`
	Turrets         []TurretSlot `json:"turrets"`
	BackgroundPath  string       `json:"background"`
	EnemyVisualPath string       `json:"enemy_visual"`
}

// Validate checks the layout before a session is built from it.
func (d *LevelDefinition) Validate() error {
	if len(d.Path) < 2 {
		return fmt.Errorf("%w: path needs at least 2 waypoints, got %d", ErrInvalidLevel, len(d.Path))
	}
	if len(d.Turrets) == 0 {
		return fmt.Errorf("%w: no turret slots", ErrInvalidLevel)
	}
	if d.StartCurrency < 0 {
		return fmt.Errorf("%w: negative start currency %d", ErrInvalidLevel, d.StartCurrency)
	}
	for i, slot := range d.Turrets {
		if !slot.Tier.IsBase() {
			return fmt.Errorf("%w: turret %d starts at tier %d, want a base tier", ErrInvalidLevel, i, slot.Tier)
		}
		if slot.Speed < 0 || slot.Range < 0 || slot.Price < 0 {
			return fmt.Errorf("%w: turret %d has negative stats", ErrInvalidLevel, i)
		}
	}
	if d.BackgroundPath == "" {
		return fmt.Errorf("%w: background asset not set", ErrInvalidLevel)
	}
	return nil
}

// Positions converts the path into simulation coordinates.
func (d *LevelDefinition) Positions() []component.Position {
	path := make([]component.Position, len(d.Path))
	for i, wp := range d.Path {
		path[i] = component.Position{X: wp.X, Y: wp.Y}
	}
	return path
}

func electricSlot(x, y int) TurretSlot {
	return TurretSlot{X: x, Y: y, Tier: component.TierElectricBase, Speed: 12, Damage: 20, Range: 160, Price: 125}
}

func sniperSlot(x, y, price int) TurretSlot {
	return TurretSlot{X: x, Y: y, Tier: component.TierSniperBase, Speed: 24, Damage: 200, Range: 280, Price: price}
}

// DefaultLevel returns the built-in map: a 64px grid path and seven turret slots.
func DefaultLevel() *LevelDefinition {
	const tile = 64
	const half = 32
	return &LevelDefinition{
		Name:          "default",
		StartCurrency: config.StartCurrency,
		Path: []Waypoint{
			{0, tile * 9}, {tile * 3, tile * 9}, {tile * 3, tile * 3}, {tile * 6, tile * 3},
			{tile * 6, tile * 7}, {tile * 19, tile * 7}, {tile * 19, tile * 4}, {tile * 16, tile * 4},
			{tile * 16, tile * 9}, {tile * 13, tile * 12},
		},
		Turrets: []TurretSlot{
			electricSlot(half*9, half*9),
			electricSlot(half*17, half*11),
			electricSlot(half*35, half*11),
			electricSlot(half*29, half*17),
			sniperSlot(half*29, half*11, 1000),
			sniperSlot(half*9, half*17, 1000),
			sniperSlot(half*1, half*23, 400),
		},
		BackgroundPath:  "assets/sprites/backgroundv4.png",
		EnemyVisualPath: "assets/sprites/t1enemy.png",
	}
}
