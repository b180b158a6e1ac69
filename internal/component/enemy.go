// internal/component/enemy.go
package component

// Enemy представляет врага текущей волны.
type Enemy struct {
	Position    Position
	Destination int // индекс точки пути; len(path) — враг вышел с карты
	Speed       int
	Health      int
	Damage      int // урон игроку при утечке
	Reward      int
	Alive       bool
	Visual      VisualHandle // общая текстура врага, владелец — Game
}

// Kill marks the enemy dead. Returns false if it was already dead.
func (e *Enemy) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}
