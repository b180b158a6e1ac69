// internal/event/types.go
package event

import "rtd-tower-defense/internal/component"

const (
	EnemyLeaked    EventType = "EnemyLeaked"    // враг дошёл до конца пути
	EnemyKilled    EventType = "EnemyKilled"    // враг убит башней
	TurretFired    EventType = "TurretFired"    // башня выстрелила
	TurretUpgraded EventType = "TurretUpgraded" // улучшение прошло
	UpgradeDenied  EventType = "UpgradeDenied"  // не хватило валюты
	WaveStarted    EventType = "WaveStarted"
	WaveCleared    EventType = "WaveCleared"
	GameEnded      EventType = "GameEnded"
)

// EnemyData is the payload of EnemyLeaked and EnemyKilled.
type EnemyData struct {
	Index  int
	Damage int
	Reward int
}

// TurretData is the payload of TurretFired, TurretUpgraded and UpgradeDenied.
type TurretData struct {
	Index  int
	Turret *component.Turret
	Tier   component.Tier
	Price  int
}

// WaveData is the payload of WaveStarted and WaveCleared.
type WaveData struct {
	Wave    int
	Enemies int
	Bonus   int
}

// GameEndedData is the payload of GameEnded.
type GameEndedData struct {
	Outcome component.Outcome
	Wave    int
}
