//go:build windows

package hotkey

import "golang.design/x/hotkey"

const supported = true

const (
	modCtrl = hotkey.ModCtrl
	modAlt  = hotkey.ModAlt

	keyRight = hotkey.KeyRight
	keyLeft  = hotkey.KeyLeft
	keyDown  = hotkey.KeyDown
)

// HasAccessibility always reports true on Windows.
func HasAccessibility() bool {
	return true
}
