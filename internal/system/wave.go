// internal/system/wave.go
package system

import (
	"math"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/utils"
)

// EnemiesToSpawn returns the size of the enemy batch for a wave.
func EnemiesToSpawn(wave int) int {
	w := float64(wave)
	return int((math.Pow(1.4, w)*2)/math.Pow(1.5, w) + w*1.5)
}

// EnemyHealth returns the full health of an enemy in the given wave.
// Health bars divide by the same value.
func EnemyHealth(wave int) float64 {
	return (140 * math.Pow(1.2, float64(wave-1))) / math.Pow(1.12, float64(wave))
}

// EnemySpeed combines a per-enemy integer jitter (2 or 3) with the wave term.
func EnemySpeed(wave, jitter int) float64 {
	return float64(jitter) + math.Pow(1.005, float64(wave-1))
}

// EnemyReward is flat and does not depend on the wave.
func EnemyReward(wave int) int {
	return config.EnemyReward
}

// EnemyDamage is what a leaking enemy takes from the player.
func EnemyDamage(wave int) int {
	return wave
}

// WaveSystem — пул врагов: создаёт партию на волну и считает живых.
type WaveSystem struct {
	rng         *utils.PRNGService
	enemyVisual component.VisualHandle
}

func NewWaveSystem(rng *utils.PRNGService, enemyVisual component.VisualHandle) *WaveSystem {
	return &WaveSystem{
		rng:         rng,
		enemyVisual: enemyVisual,
	}
}

// SpawnWave builds a fresh batch of count enemies lined up left of the screen.
// The first enemy starts 150..400 px left of x=0, each next one 60..160 px behind the previous.
func (s *WaveSystem) SpawnWave(wave, count int) []component.Enemy {
	if count < 0 {
		count = 0
	}
	enemies := make([]component.Enemy, count)
	health := int(EnemyHealth(wave))

	x := 0
	for i := range enemies {
		if i == 0 {
			x = -100 - s.rng.IntRange(50, 300)
		} else {
			x -= s.rng.IntRange(60, 160)
		}
		speed := EnemySpeed(wave, s.rng.IntRange(2, 3))

		enemies[i] = component.Enemy{
			Position:    component.Position{X: x, Y: config.EnemySpawnY},
			Destination: 0,
			Speed:       int(speed),
			Health:      health,
			Damage:      EnemyDamage(wave),
			Reward:      EnemyReward(wave),
			Alive:       true,
			Visual:      s.enemyVisual,
		}
	}
	return enemies
}

// CountAlive returns how many enemies of the batch are still alive.
func CountAlive(enemies []component.Enemy) int {
	alive := 0
	for i := range enemies {
		if enemies[i].Alive {
			alive++
		}
	}
	return alive
}
