// internal/assets/rlassets/loader.go
package rlassets

import (
	"fmt"

	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/interfaces"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	_ interfaces.AssetLoader = (*Loader)(nil)
	_ interfaces.SoundPlayer = (*Loader)(nil)
)

// Loader loads textures and sounds through raylib. The window and, when sounds
// are used, the audio device must be open before the first load.
// Handles are *rl.Texture2D and *rl.Sound.
type Loader struct {
	root   string
	volume float32
	music  *rl.Music
}

func NewLoader(root string, volume float64) *Loader {
	return &Loader{root: root, volume: float32(volume)}
}

// resolve checks the file first: raylib only logs a missing file.
func (l *Loader) resolve(path string) (string, error) {
	if err := assets.Exists(l.root, path); err != nil {
		return "", err
	}
	return assets.Resolve(l.root, path), nil
}

func (l *Loader) LoadVisual(path string) (component.VisualHandle, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	tex := rl.LoadTexture(full)
	if tex.ID == 0 {
		return nil, fmt.Errorf("load %s: texture not created", path)
	}
	return &tex, nil
}

func (l *Loader) ReleaseVisual(handle component.VisualHandle) {
	if tex, ok := handle.(*rl.Texture2D); ok && tex != nil {
		rl.UnloadTexture(*tex)
	}
}

func (l *Loader) LoadSound(path string) (component.SoundHandle, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	snd := rl.LoadSound(full)
	if snd.FrameCount == 0 {
		return nil, fmt.Errorf("load %s: sound not created", path)
	}
	rl.SetSoundVolume(snd, l.volume)
	return &snd, nil
}

func (l *Loader) Play(handle component.SoundHandle) {
	if snd, ok := handle.(*rl.Sound); ok && snd != nil {
		rl.PlaySound(*snd)
	}
}

func (l *Loader) ReleaseSound(handle component.SoundHandle) {
	if snd, ok := handle.(*rl.Sound); ok && snd != nil {
		rl.UnloadSound(*snd)
	}
}

// PlayMusic starts streaming a looping track. UpdateMusic must be called every frame.
func (l *Loader) PlayMusic(path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	l.StopMusic()
	music := rl.LoadMusicStream(full)
	if music.FrameCount == 0 {
		return fmt.Errorf("load %s: music stream not created", path)
	}
	music.Looping = true
	rl.SetMusicVolume(music, l.volume)
	rl.PlayMusicStream(music)
	l.music = &music
	return nil
}

// UpdateMusic refills the music stream buffers.
func (l *Loader) UpdateMusic() {
	if l.music != nil {
		rl.UpdateMusicStream(*l.music)
	}
}

func (l *Loader) StopMusic() {
	if l.music == nil {
		return
	}
	rl.StopMusicStream(*l.music)
	rl.UnloadMusicStream(*l.music)
	l.music = nil
}
