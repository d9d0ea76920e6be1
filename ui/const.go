package ui

import "fyne.io/fyne/v2"

var (
	// panelSize is the initial notch panel size.
	panelSize = fyne.NewSize(520, 300)
	// prefsSize is the initial preferences window size.
	prefsSize = fyne.NewSize(640, 720)
)

// updateMenuItemPrefix labels the tray item shown when a release is available.
const updateMenuItemPrefix = "Update to "

// Tray menu labels.
const (
	menuShowNotch    = "Show Notch"
	menuNextTab      = "Next Tab"
	menuPrevTab      = "Previous Tab"
	menuPreferences  = "Preferences"
	menuCheckUpdates = "Check for Updates"
	menuQuit         = "Quit"
)
