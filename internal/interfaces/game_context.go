// internal/interfaces/game_context.go
package interfaces

// GameContext — методы сессии, которые нужны системам.
// Системы не зависят от пакета app напрямую.
type GameContext interface {
	CurrentWave() int
	Currency() int
	AddCurrency(amount int)
	SpendCurrency(amount int)
	DamagePlayer(amount int)
}
