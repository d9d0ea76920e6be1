//go:build linux

package ui

import (
	"os"

	"fyne.io/fyne/v2"
)

type linuxOS struct{}

// TransformToForeground is a no-op on Linux.
func (l *linuxOS) TransformToForeground() {}

// TransformToBackground is a no-op on Linux.
func (l *linuxOS) TransformToBackground() {}

// SetupLifecycle is a no-op on Linux desktops with a system tray.
func (l *linuxOS) SetupLifecycle(fyne.App, *NotchApp) {}

// chromeOS has no system tray under Crostini, so clicking the shelf icon
// opens the notch panel instead.
type chromeOS struct {
	linuxOS
}

func (c *chromeOS) SetupLifecycle(app fyne.App, na *NotchApp) {
	app.Lifecycle().SetOnEnteredForeground(func() {
		na.ShowPanel()
	})
}

func getOS() OS {
	if _, err := os.Stat("/dev/.cros_milestone"); err == nil {
		return &chromeOS{}
	}
	return &linuxOS{}
}
