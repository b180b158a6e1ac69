// internal/component/position.go
package component

// Position — целочисленная точка на экране.
type Position struct {
	X, Y int
}

// VisualHandle is an opaque reference to a loaded image owned by an AssetLoader.
type VisualHandle interface{}

// SoundHandle is an opaque reference to a loaded sound owned by a SoundPlayer.
type SoundHandle interface{}
