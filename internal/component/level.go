// internal/component/level.go
package component

// Level is the immutable layout a session plays on.
type Level struct {
	StartCurrency int
	Path          []Position
	MaxTurrets    int
	Background    VisualHandle
}
