// Package status mirrors system volume and display brightness so the notch
// can draw its own HUD.
package status

import (
	"sync"
	"time"
)

// Source names who produced a change.
const (
	SourceSystem = "system"
	SourceOSD    = "osd"
	SourceUser   = "user"
)

// Snapshot is an immutable copy of the mirrored levels. Levels are in [0, 1].
type Snapshot struct {
	Volume     float64
	Muted      bool
	Brightness float64
	Source     string
	Updated    time.Time
}

// Listener is called with the new snapshot after every change.
type Listener func(Snapshot)

// Model holds the current levels. It is safe for concurrent use; listeners
// run on the goroutine that made the change.
type Model struct {
	mu        sync.RWMutex
	snap      Snapshot
	listeners []Listener
	now       func() time.Time
}

// NewModel creates a model at zero volume and full brightness.
func NewModel() *Model {
	return &Model{
		snap: Snapshot{Brightness: 1, Source: SourceSystem},
		now:  time.Now,
	}
}

// Snapshot returns the current levels.
func (m *Model) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// AddListener registers fn to be called on every change.
func (m *Model) AddListener(fn Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// SetVolume sets the output volume. Values outside [0, 1] are clamped.
func (m *Model) SetVolume(v float64, source string) {
	m.update(source, func(s *Snapshot) { s.Volume = clamp(v) })
}

// SetMuted sets the mute flag.
func (m *Model) SetMuted(muted bool, source string) {
	m.update(source, func(s *Snapshot) { s.Muted = muted })
}

// SetBrightness sets the display brightness. Values outside [0, 1] are clamped.
func (m *Model) SetBrightness(v float64, source string) {
	m.update(source, func(s *Snapshot) { s.Brightness = clamp(v) })
}

func (m *Model) update(source string, apply func(*Snapshot)) {
	m.mu.Lock()
	apply(&m.snap)
	m.snap.Source = source
	m.snap.Updated = m.now()
	snap := m.snap
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Percent returns v in [0, 1] as a whole percentage.
func Percent(v float64) int {
	return int(clamp(v)*100 + 0.5)
}
