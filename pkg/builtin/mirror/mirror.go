// Package mirror is the built-in webcam mirror extension.
package mirror

import (
	"image"
	"reflect"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/camera"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// ID is the extension id.
const ID = "mirror"

// Icon is the provider-level tab icon. The descriptor declares none.
const Icon = "web.camera"

// WaitingText is shown while the camera has not produced a frame.
const WaitingText = "Waiting for camera..."

// Default frame size when the host gives no geometry.
const (
	defaultWidth  = 320
	defaultHeight = 180
)

// Descriptor returns the mirror extension descriptor.
func Descriptor() extension.Descriptor {
	return extension.Descriptor{
		ID:   ID,
		Name: "Mirror",
		Factory: func() (extension.Provider, error) {
			return NewProvider(), nil
		},
	}
}

// Provider renders the mirrored camera frame. The last scaled frame is kept
// so passes that see the same frame and geometry skip the resample.
type Provider struct {
	extension.Base

	last   image.Image
	lastW  int
	lastH  int
	scaled *image.NRGBA
}

// NewProvider creates a mirror provider.
func NewProvider() *Provider {
	return &Provider{Base: extension.Base{Icon: Icon}}
}

// View renders the navigation tab. It declines every other surface and
// declines the tab when the host has no camera.
func (p *Provider) View(kind extension.SurfaceKind, ctx extension.Context) extension.Content {
	if kind != extension.SurfaceNavigationTab || ctx.Camera == nil {
		return nil
	}

	frame, err := ctx.Camera.Frame()
	if err != nil {
		log.Debugf("Mirror: %v", err)
		label := widget.NewLabel(WaitingText)
		label.Alignment = fyne.TextAlignCenter
		return label
	}

	w, h := defaultWidth, defaultHeight
	if ctx.HasGeometry() {
		w, h = int(ctx.Geometry.Width), int(ctx.Geometry.Height)
	}

	img := canvas.NewImageFromImage(p.mirrored(frame, w, h))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	return img
}

func (p *Provider) mirrored(frame image.Image, w, h int) *image.NRGBA {
	if p.scaled != nil && w == p.lastW && h == p.lastH && sameFrame(frame, p.last) {
		return p.scaled
	}
	p.last, p.lastW, p.lastH = frame, w, h
	p.scaled = camera.Mirror(frame, w, h)
	return p.scaled
}

// sameFrame compares frames by identity. Frames of non-comparable types are
// never considered the same.
func sameFrame(a, b image.Image) bool {
	if a == nil || b == nil || !reflect.TypeOf(a).Comparable() || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a == b
}
