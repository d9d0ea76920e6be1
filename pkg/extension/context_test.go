package extension

import (
	"testing"
	"time"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	t.Run("Zero assembler", func(t *testing.T) {
		ctx := Assembler{}.Assemble()
		assert.Equal(t, ContextVersion, ctx.Version)
		assert.False(t, ctx.HasGeometry())
		assert.Nil(t, ctx.Reminders)
		assert.Nil(t, ctx.Camera)
		assert.False(t, ctx.Now.IsZero())
	})

	t.Run("Snapshots getters", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
		model := status.NewModel()
		model.SetVolume(0.4, status.SourceSystem)

		asm := Assembler{
			Geometry: func() Geometry { return Geometry{Width: 640, Height: 190} },
			Status:   model.Snapshot,
			Clock:    func() time.Time { return now },
		}
		ctx := asm.Assemble()

		assert.True(t, ctx.HasGeometry())
		assert.Equal(t, float32(640), ctx.Geometry.Width)
		assert.Equal(t, 0.4, ctx.Status.Volume)
		assert.Equal(t, now, ctx.Now)

		// Later host changes belong to the next pass.
		model.SetVolume(0.9, status.SourceSystem)
		assert.Equal(t, 0.4, ctx.Status.Volume)
		assert.Equal(t, 0.9, asm.Assemble().Status.Volume)
	})

	t.Run("WithGeometry copies", func(t *testing.T) {
		ctx := Context{Geometry: Geometry{Width: 1, Height: 1}}
		wide := ctx.WithGeometry(Geometry{Width: 500, Height: 40})
		assert.Equal(t, float32(1), ctx.Geometry.Width)
		assert.Equal(t, float32(500), wide.Geometry.Width)
	})
}

func TestSurfaceKindString(t *testing.T) {
	assert.Equal(t, "NavigationTab", SurfaceNavigationTab.String())
	assert.Equal(t, "Settings", SurfaceSettings.String())
	assert.Equal(t, "HUD", SurfaceHUD.String())
	assert.Equal(t, "Unknown", SurfaceKind(42).String())
	assert.Len(t, SurfaceKinds(), 3)
}
