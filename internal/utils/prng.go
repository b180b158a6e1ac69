// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел,
// чтобы разброс при спавне был воспроизводимым по сиду.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns a uniform integer in [lo, hi], both inclusive.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
