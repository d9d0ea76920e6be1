//go:build darwin

package hotkey

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

int checkAccessibilityNative() {
    return AXIsProcessTrusted() ? 1 : 0;
}
*/
import "C"

import "golang.design/x/hotkey"

const supported = true

const (
	modCtrl = hotkey.ModCmd
	modAlt  = hotkey.ModOption

	keyRight = hotkey.KeyRight
	keyLeft  = hotkey.KeyLeft
	keyDown  = hotkey.KeyDown
)

// HasAccessibility reports whether the process is trusted for accessibility.
func HasAccessibility() bool {
	return C.checkAccessibilityNative() != 0
}
