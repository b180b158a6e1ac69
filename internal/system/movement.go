// internal/system/movement.go
package system

import (
	"math"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/config"
	"rtd-tower-defense/internal/event"
	"rtd-tower-defense/internal/interfaces"
	"rtd-tower-defense/internal/utils"
)

// MovementSystem ведёт врагов по точкам пути уровня.
type MovementSystem struct {
	path            []component.Position
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(path []component.Position, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		path:            path,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// Update advances every living enemy by one frame, in slice order.
func (s *MovementSystem) Update(enemies []component.Enemy) {
	for i := range enemies {
		if enemies[i].Alive {
			s.Step(i, &enemies[i])
		}
	}
}

// Step runs one frame of the path follower for a single enemy.
// The arrival check runs before the move, so an enemy can switch waypoint
// and move toward the new one in the same frame.
func (s *MovementSystem) Step(index int, e *component.Enemy) {
	if !e.Alive || e.Destination >= len(s.path) {
		return
	}

	if utils.WithinBox(e.Position, s.path[e.Destination], config.ArrivalTolerance) {
		if e.Destination < len(s.path)-1 {
			e.Destination++
		} else {
			s.leak(index, e)
			return
		}
	}

	target := s.path[e.Destination]
	dx := float64(target.X - e.Position.X)
	dy := float64(target.Y - e.Position.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return
	}

	// Дробное смещение, позиция усекается к нулю один раз за кадр.
	speed := float64(e.Speed)
	e.Position.X = int(float64(e.Position.X) + dx/dist*speed)
	e.Position.Y = int(float64(e.Position.Y) + dy/dist*speed)
}

func (s *MovementSystem) leak(index int, e *component.Enemy) {
	if !e.Kill() {
		return
	}
	e.Destination = len(s.path)
	s.game.DamagePlayer(e.Damage)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyLeaked,
		Data: event.EnemyData{Index: index, Damage: e.Damage, Reward: e.Reward},
	})
}
