//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

// X11 modifier masks differ per keyboard layout, so shortcuts stay off here.
const supported = false

const (
	modCtrl = hotkey.Modifier(0)
	modAlt  = hotkey.Modifier(0)

	keyRight = hotkey.Key(0)
	keyLeft  = hotkey.Key(0)
	keyDown  = hotkey.Key(0)
)

// HasAccessibility always reports true here.
func HasAccessibility() bool {
	return true
}
