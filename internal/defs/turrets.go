// internal/defs/turrets.go
package defs

import "rtd-tower-defense/internal/component"

// TierDefinition holds the static data attached to a turret tier.
type TierDefinition struct {
	Tier             component.Tier
	Name             string
	VisualPath       string
	SoundPath        string  // звук выстрела; пусто у базовых башен
	DamageMultiplier float64 // 0 — башня не стреляет
}

// TierDefs is the library of tier definitions, keyed by tier.
var TierDefs = map[component.Tier]TierDefinition{
	component.TierElectricBase: {
		Tier:       component.TierElectricBase,
		Name:       "Electric box",
		VisualPath: "assets/sprites/electricTurretBox.png",
	},
	component.TierElectric1: {
		Tier:             component.TierElectric1,
		Name:             "Zap turret I",
		VisualPath:       "assets/sprites/electricTurretT1.png",
		SoundPath:        "assets/sfx/zapTowerA.wav",
		DamageMultiplier: 1,
	},
	component.TierElectric2: {
		Tier:             component.TierElectric2,
		Name:             "Zap turret II",
		VisualPath:       "assets/sprites/electricTurretT2.png",
		SoundPath:        "assets/sfx/zapTowerA.wav",
		DamageMultiplier: 1.5,
	},
	component.TierElectric3: {
		Tier:             component.TierElectric3,
		Name:             "Zap turret III",
		VisualPath:       "assets/sprites/electricTurretT3.png",
		SoundPath:        "assets/sfx/zapTowerA.wav",
		DamageMultiplier: 2,
	},
	component.TierSniperBase: {
		Tier:       component.TierSniperBase,
		Name:       "Sniper box",
		VisualPath: "assets/sprites/sniperTurretBox.png",
	},
	component.TierSniper1: {
		Tier:             component.TierSniper1,
		Name:             "Sniper I",
		VisualPath:       "assets/sprites/sniperTurretT1.png",
		SoundPath:        "assets/sfx/sniperTowerB.wav",
		DamageMultiplier: 1,
	},
	component.TierSniper2: {
		Tier:             component.TierSniper2,
		Name:             "Sniper II",
		VisualPath:       "assets/sprites/sniperTurretT2.png",
		SoundPath:        "assets/sfx/sniperTowerB.wav",
		DamageMultiplier: 2,
	},
	component.TierSniper3: {
		Tier:             component.TierSniper3,
		Name:             "Sniper III",
		VisualPath:       "assets/sprites/sniperTurretT3.png",
		SoundPath:        "assets/sfx/sniperTowerB.wav",
		DamageMultiplier: 4,
	},
}

// DamageMultiplier returns the per-tier damage multiplier, 0 for tiers that never fire.
func DamageMultiplier(t component.Tier) float64 {
	return TierDefs[t].DamageMultiplier
}

// Sound effects played by the session itself.
const (
	SoundConfirm = "assets/sfx/yes.wav"
	SoundDeny    = "assets/sfx/no.wav"
	SoundWin     = "assets/sfx/win.wav"
	SoundLose    = "assets/sfx/loose.wav"
	SoundLeak    = "assets/sfx/enemy.wav"
	MusicTrack   = "assets/sfx/background.wav"
	FontPath     = "assets/fonts/Arial.ttf"
)
