//go:build windows

package ui

import "fyne.io/fyne/v2"

type windowsOS struct{}

// TransformToForeground is a no-op; Windows has no Dock.
func (w *windowsOS) TransformToForeground() {}

// TransformToBackground is a no-op; Windows has no Dock.
func (w *windowsOS) TransformToBackground() {}

// SetupLifecycle has nothing to install on Windows.
func (w *windowsOS) SetupLifecycle(fyne.App, *NotchApp) {}

func getOS() OS {
	return &windowsOS{}
}
