// internal/system/combat.go
package system

import (
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/defs"
	"rtd-tower-defense/internal/event"
	"rtd-tower-defense/internal/interfaces"
	"rtd-tower-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(game interfaces.GameContext, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// Update lets every turret act once, in slice order.
// Turrets do not reserve targets: several may hit the same enemy in one frame.
func (s *CombatSystem) Update(turrets []component.Turret, enemies []component.Enemy) {
	for i := range turrets {
		s.Fire(i, &turrets[i], enemies)
	}
}

// Fire shoots the first living enemy in range, in slice order, if the turret is ready.
// The cooldown ticks down only on frames the turret did not fire.
func (s *CombatSystem) Fire(index int, t *component.Turret, enemies []component.Enemy) bool {
	fired := false
	multiplier := defs.DamageMultiplier(t.Tier)

	if multiplier > 0 && t.Cooldown == 0 {
		for i := range enemies {
			e := &enemies[i]
			if !e.Alive {
				continue
			}
			if utils.TruncDistance(t.Position, e.Position) > t.Range {
				continue
			}

			s.hit(i, e, float64(t.Damage)*multiplier)
			t.Cooldown = t.Speed
			fired = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TurretFired,
				Data: event.TurretData{Index: index, Turret: t, Tier: t.Tier},
			})
			break
		}
	}

	if !fired && t.Cooldown > 0 {
		t.Cooldown--
	}
	return fired
}

func (s *CombatSystem) hit(index int, e *component.Enemy, damage float64) {
	e.Health = int(float64(e.Health) - damage)
	if e.Health > 0 {
		return
	}
	if e.Kill() {
		s.game.AddCurrency(e.Reward)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyData{Index: index, Damage: e.Damage, Reward: e.Reward},
		})
	}
}
