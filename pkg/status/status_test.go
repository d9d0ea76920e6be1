package status

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModel(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		m := NewModel()
		s := m.Snapshot()
		assert.Equal(t, 0.0, s.Volume)
		assert.Equal(t, 1.0, s.Brightness)
		assert.False(t, s.Muted)
	})

	t.Run("Clamping", func(t *testing.T) {
		m := NewModel()
		m.SetVolume(1.5, SourceUser)
		assert.Equal(t, 1.0, m.Snapshot().Volume)

		m.SetBrightness(-0.2, SourceUser)
		assert.Equal(t, 0.0, m.Snapshot().Brightness)
	})

	t.Run("Source and timestamp", func(t *testing.T) {
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		m := NewModel()
		m.now = func() time.Time { return fixed }

		m.SetMuted(true, SourceOSD)
		s := m.Snapshot()
		assert.True(t, s.Muted)
		assert.Equal(t, SourceOSD, s.Source)
		assert.Equal(t, fixed, s.Updated)
	})

	t.Run("Listeners", func(t *testing.T) {
		m := NewModel()
		var got []Snapshot
		m.AddListener(func(s Snapshot) { got = append(got, s) })

		m.SetVolume(0.25, SourceSystem)
		m.SetBrightness(0.5, SourceSystem)

		assert.Len(t, got, 2)
		assert.Equal(t, 0.25, got[0].Volume)
		assert.Equal(t, 0.5, got[1].Brightness)
		assert.Equal(t, 0.25, got[1].Volume)
	})

	t.Run("Concurrency", func(t *testing.T) {
		m := NewModel()
		var wg sync.WaitGroup
		iterations := 100

		wg.Add(iterations)
		for i := 0; i < iterations; i++ {
			go func(i int) {
				defer wg.Done()
				m.SetVolume(float64(i)/100, SourceSystem)
				_ = m.Snapshot()
			}(i)
		}
		wg.Wait()
		v := m.Snapshot().Volume
		assert.True(t, v >= 0 && v <= 1)
	})
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"Zero", 0, 0},
		{"Half", 0.5, 50},
		{"Rounds", 0.456, 46},
		{"Full", 1, 100},
		{"Over", 3, 100},
		{"Under", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.input))
		})
	}
}
