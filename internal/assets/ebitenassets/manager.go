// internal/assets/ebitenassets/manager.go
package ebitenassets

import (
	"bytes"
	"fmt"
	"io"

	"rtd-tower-defense/internal/assets"
	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/interfaces"
	"rtd-tower-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"
)

var (
	_ interfaces.AssetLoader = (*Manager)(nil)
	_ interfaces.SoundPlayer = (*Manager)(nil)
)

// sound — загруженный эффект. player == nil, когда звук выключен.
type sound struct {
	path   string
	player *audio.Player
}

// Manager loads sprites as ebiten images and wav files as ebiten audio players.
// It implements interfaces.AssetLoader and interfaces.SoundPlayer.
type Manager struct {
	root   string
	cfg    assets.AudioConfig
	ctx    *audio.Context
	music  *audio.Player
	images int
	sounds int
}

// NewManager resolves every asset path against root.
// Only one Manager with audio enabled may exist per process.
func NewManager(root string, cfg assets.AudioConfig) *Manager {
	m := &Manager{root: root, cfg: cfg}
	if cfg.Enabled {
		m.ctx = audio.NewContext(cfg.SampleRate)
	}
	return m
}

func (m *Manager) LoadVisual(path string) (component.VisualHandle, error) {
	src, err := assets.DecodeImage(m.root, path)
	if err != nil {
		return nil, err
	}
	m.images++
	return ebiten.NewImageFromImage(src), nil
}

func (m *Manager) ReleaseVisual(handle component.VisualHandle) {
	img, ok := handle.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	img.Deallocate()
	m.images--
}

// LoadSound decodes a wav file into memory. With audio disabled the file is
// still checked so a missing asset is reported the same way.
func (m *Manager) LoadSound(path string) (component.SoundHandle, error) {
	data, err := m.decode(path)
	if err != nil {
		return nil, err
	}
	s := &sound{path: path}
	if m.ctx != nil {
		s.player = m.ctx.NewPlayerFromBytes(data)
		s.player.SetVolume(m.cfg.Volume)
	}
	m.sounds++
	return s, nil
}

func (m *Manager) decode(path string) ([]byte, error) {
	raw, err := assets.ReadFile(m.root, path)
	if err != nil {
		return nil, err
	}
	if m.ctx == nil {
		return raw, nil
	}
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return data, nil
}

// Play restarts the effect from the beginning. It never blocks.
func (m *Manager) Play(handle component.SoundHandle) {
	s, ok := handle.(*sound)
	if !ok || s == nil || s.player == nil {
		return
	}
	if err := s.player.Rewind(); err != nil {
		logger.Log.WithFields(logrus.Fields{"path": s.path, "error": err}).Debug("Rewind failed")
		return
	}
	s.player.Play()
}

func (m *Manager) ReleaseSound(handle component.SoundHandle) {
	s, ok := handle.(*sound)
	if !ok || s == nil {
		return
	}
	if s.player != nil {
		if err := s.player.Close(); err != nil {
			logger.Log.WithFields(logrus.Fields{"path": s.path, "error": err}).Warn("Sound player not closed")
		}
		s.player = nil
	}
	m.sounds--
}

// PlayMusic loops the wav track until StopMusic. A missing track is reported, not fatal.
func (m *Manager) PlayMusic(path string) error {
	if m.ctx == nil {
		return nil
	}
	m.StopMusic()

	raw, err := assets.ReadFile(m.root, path)
	if err != nil {
		return err
	}
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return fmt.Errorf("music %s: %w", path, err)
	}
	player.SetVolume(m.cfg.Volume)
	player.Play()
	m.music = player
	return nil
}

// StopMusic stops and closes the music track, if any.
func (m *Manager) StopMusic() {
	if m.music == nil {
		return
	}
	m.music.Pause()
	if err := m.music.Close(); err != nil {
		logger.Log.WithField("error", err).Warn("Music player not closed")
	}
	m.music = nil
}

// Outstanding returns how many images and sounds are loaded and not released.
func (m *Manager) Outstanding() (images, sounds int) {
	return m.images, m.sounds
}
