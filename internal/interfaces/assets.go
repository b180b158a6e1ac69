// internal/interfaces/assets.go
package interfaces

import (
	"errors"

	"rtd-tower-defense/internal/component"
)

// ErrAssetNotFound is wrapped by loaders when a visual or sound file is missing.
var ErrAssetNotFound = errors.New("asset not found")

// AssetLoader loads and releases images.
type AssetLoader interface {
	LoadVisual(path string) (component.VisualHandle, error)
	ReleaseVisual(handle component.VisualHandle)
}

// SoundPlayer loads, plays and releases sound effects. Play never blocks.
type SoundPlayer interface {
	LoadSound(path string) (component.SoundHandle, error)
	Play(handle component.SoundHandle)
	ReleaseSound(handle component.SoundHandle)
}
