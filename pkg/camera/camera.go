// Package camera supplies frames for the mirror extension and prepares them
// for display.
package camera

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PatternCaption is printed on the test pattern when there is room.
const PatternCaption = "NO CAMERA"

// ErrNoFrame is returned when a source has nothing to show yet.
var ErrNoFrame = errors.New("no camera frame available")

// FrameSource yields the most recent frame. Implementations must not block.
type FrameSource interface {
	Frame() (image.Image, error)
}

// StaticSource serves a fixed frame. Device backends push frames into it with
// SetFrame from their own goroutine.
type StaticSource struct {
	mu    sync.RWMutex
	frame image.Image
}

// NewStaticSource creates a source showing img. A nil img means no frame yet.
func NewStaticSource(img image.Image) *StaticSource {
	return &StaticSource{frame: img}
}

// NewTestPattern creates a source showing a horizontal gradient with a marker
// bar on the left, so mirroring is visible.
func NewTestPattern(width, height int) *StaticSource {
	img := imaging.New(width, height, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
	for x := 0; x < width; x++ {
		shade := uint8(40 + 180*x/max(width, 1))
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, color.NRGBA{R: shade, G: shade / 2, B: 255 - shade, A: 255})
		}
	}
	marker := max(width/10, 1)
	for x := 0; x < marker; x++ {
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	drawCaption(img, PatternCaption, marker)
	return NewStaticSource(img)
}

// drawCaption centres text on img when it fits clear of the marker bar.
func drawCaption(img *image.NRGBA, text string, marker int) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	w := d.MeasureString(text).Ceil()
	b := img.Bounds()
	if w+2*marker > b.Dx() || face.Height > b.Dy() {
		return
	}
	x := (b.Dx() - w) / 2
	y := (b.Dy() + face.Ascent) / 2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// SetFrame replaces the current frame.
func (s *StaticSource) SetFrame(img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = img
}

// Frame implements FrameSource.
func (s *StaticSource) Frame() (image.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.frame == nil {
		return nil, ErrNoFrame
	}
	return s.frame, nil
}

// Mirror flips img horizontally and, when a size is given, crops and scales it
// to fill width x height around the centre.
func Mirror(img image.Image, width, height int) *image.NRGBA {
	flipped := imaging.FlipH(img)
	if width <= 0 || height <= 0 {
		return flipped
	}
	return imaging.Fill(flipped, width, height, imaging.Center, imaging.Lanczos)
}
