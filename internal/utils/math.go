// internal/utils/math.go
package utils

import (
	"math"

	"rtd-tower-defense/internal/component"
)

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b component.Position) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// TruncDistance is Distance truncated toward zero, the unit used for range checks.
func TruncDistance(a, b component.Position) int {
	return int(Distance(a, b))
}

// WithinBox reports whether both axis deltas are strictly below half.
func WithinBox(a, b component.Position, half int) bool {
	return Abs(a.X-b.X) < half && Abs(a.Y-b.Y) < half
}
