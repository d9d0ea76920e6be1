package extension

import "fyne.io/fyne/v2"

// SurfaceKind identifies a placement the host can ask an extension to fill.
// The set is fixed by the host; extensions cannot add new kinds.
type SurfaceKind int

const (
	// SurfaceNavigationTab is the body of an extension's tab in the notch panel.
	SurfaceNavigationTab SurfaceKind = iota
	// SurfaceSettings is the extension's section of the preferences window.
	SurfaceSettings
	// SurfaceHUD is the live strip shown while the notch is closed.
	SurfaceHUD
)

// SurfaceKinds returns every known surface kind in declaration order.
func SurfaceKinds() []SurfaceKind {
	return []SurfaceKind{SurfaceNavigationTab, SurfaceSettings, SurfaceHUD}
}

// String returns the string representation of the surface kind.
func (k SurfaceKind) String() string {
	switch k {
	case SurfaceNavigationTab:
		return "NavigationTab"
	case SurfaceSettings:
		return "Settings"
	case SurfaceHUD:
		return "HUD"
	default:
		return "Unknown"
	}
}

// Content is a renderable description handed to the rendering layer.
// The registry never draws it; it only passes it through.
type Content = fyne.CanvasObject
