// internal/assets/memory.go
package assets

import (
	"fmt"

	"rtd-tower-defense/internal/component"
	"rtd-tower-defense/internal/interfaces"
)

// memoryHandle — фиктивный ресурс без реальных данных.
type memoryHandle struct {
	id   int
	path string
}

// MemoryStore is a headless AssetLoader and SoundPlayer.
// It hands out fake handles and keeps track of what is still held,
// what was played and what was released twice.
type MemoryStore struct {
	Missing map[string]bool

	nextID         int
	live           map[int]string
	played         []string
	loads          []string
	doubleReleases int
}

func NewMemoryStore(missing ...string) *MemoryStore {
	m := &MemoryStore{
		Missing: make(map[string]bool),
		live:    make(map[int]string),
	}
	for _, path := range missing {
		m.Missing[path] = true
	}
	return m
}

func (m *MemoryStore) load(path string) (*memoryHandle, error) {
	m.loads = append(m.loads, path)
	if m.Missing[path] {
		return nil, fmt.Errorf("load %s: %w", path, interfaces.ErrAssetNotFound)
	}
	m.nextID++
	m.live[m.nextID] = path
	return &memoryHandle{id: m.nextID, path: path}, nil
}

func (m *MemoryStore) release(handle interface{}) {
	h, ok := handle.(*memoryHandle)
	if !ok || h == nil {
		return
	}
	if _, held := m.live[h.id]; !held {
		m.doubleReleases++
		return
	}
	delete(m.live, h.id)
}

func (m *MemoryStore) LoadVisual(path string) (component.VisualHandle, error) {
	h, err := m.load(path)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (m *MemoryStore) ReleaseVisual(handle component.VisualHandle) {
	m.release(handle)
}

func (m *MemoryStore) LoadSound(path string) (component.SoundHandle, error) {
	h, err := m.load(path)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (m *MemoryStore) Play(handle component.SoundHandle) {
	if h, ok := handle.(*memoryHandle); ok && h != nil {
		m.played = append(m.played, h.path)
	}
}

func (m *MemoryStore) ReleaseSound(handle component.SoundHandle) {
	m.release(handle)
}

// Outstanding returns how many handles are loaded and not yet released.
func (m *MemoryStore) Outstanding() int {
	return len(m.live)
}

// DoubleReleases counts releases of handles that were not held.
func (m *MemoryStore) DoubleReleases() int {
	return m.doubleReleases
}

// Played returns the paths of played sounds, oldest first.
func (m *MemoryStore) Played() []string {
	return m.played
}

// PlayCount returns how many times the sound at path was played.
func (m *MemoryStore) PlayCount(path string) int {
	n := 0
	for _, p := range m.played {
		if p == path {
			n++
		}
	}
	return n
}

// Loads returns every path a load was attempted for.
func (m *MemoryStore) Loads() []string {
	return m.loads
}

// PathOf returns the path a handle was loaded from.
func PathOf(handle interface{}) string {
	if h, ok := handle.(*memoryHandle); ok && h != nil {
		return h.path
	}
	return ""
}
