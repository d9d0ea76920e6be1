package extension

import (
	"time"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/camera"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/reminder"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
)

// ContextVersion is bumped whenever Context gains or changes fields.
const ContextVersion = 1

// Geometry describes the area a surface is laid out in.
type Geometry struct {
	Width  float32
	Height float32
}

// Context is the read-only snapshot of host state handed to providers during
// one resolution pass. It is passed by value; providers must not retain it
// across passes and must tolerate zero or nil fields.
type Context struct {
	Version   int
	Geometry  Geometry
	Status    status.Snapshot
	Reminders reminder.Lister    // May be nil.
	Camera    camera.FrameSource // May be nil.
	Now       time.Time
}

// HasGeometry reports whether the host supplied a usable layout size.
func (c Context) HasGeometry() bool {
	return c.Geometry.Width > 0 && c.Geometry.Height > 0
}

// Assembler builds a fresh Context for every pass from host getters.
// Any nil getter leaves the matching field at its zero value.
type Assembler struct {
	Geometry  func() Geometry
	Status    func() status.Snapshot
	Reminders reminder.Lister
	Camera    camera.FrameSource
	Clock     func() time.Time
}

// Assemble snapshots the host state into a new Context.
func (a Assembler) Assemble() Context {
	ctx := Context{
		Version:   ContextVersion,
		Reminders: a.Reminders,
		Camera:    a.Camera,
	}
	if a.Geometry != nil {
		ctx.Geometry = a.Geometry()
	}
	if a.Status != nil {
		ctx.Status = a.Status()
	}
	if a.Clock != nil {
		ctx.Now = a.Clock()
	} else {
		ctx.Now = time.Now()
	}
	return ctx
}

// WithGeometry returns a copy of the context laid out in g.
func (c Context) WithGeometry(g Geometry) Context {
	c.Geometry = g
	return c
}
