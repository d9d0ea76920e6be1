package ui

import "fyne.io/fyne/v2"

// OS hides platform differences in how a tray-only app presents windows.
type OS interface {
	// TransformToForeground gives the app a Dock icon while a regular
	// window such as Preferences is open.
	TransformToForeground()
	// TransformToBackground returns the app to a tray-only accessory.
	TransformToBackground()
	// SetupLifecycle installs platform lifecycle hooks.
	SetupLifecycle(app fyne.App, na *NotchApp)
}
