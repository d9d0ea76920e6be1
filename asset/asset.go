// Package asset maps the symbolic icon names used by extensions to fyne
// resources.
package asset

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// Manager resolves icon names. Extensions declare icons with SF Symbol style
// names ("house.fill", "web.camera"); the manager maps them onto the theme's
// icon set.
type Manager struct {
	icons map[string]fyne.Resource
}

// NewManager creates a new asset manager with the built-in icon table.
func NewManager() *Manager {
	return &Manager{
		icons: map[string]fyne.Resource{
			"house":              theme.HomeIcon(),
			"house.fill":         theme.HomeIcon(),
			"web.camera":         theme.MediaVideoIcon(),
			"camera":             theme.MediaVideoIcon(),
			"checklist":          theme.ListIcon(),
			"list.bullet":        theme.ListIcon(),
			"speaker.wave.2":     theme.VolumeUpIcon(),
			"speaker.slash":      theme.VolumeMuteIcon(),
			"sun.max":            theme.VisibilityIcon(),
			"gearshape":          theme.SettingsIcon(),
			"arrow.right":        theme.NavigateNextIcon(),
			"arrow.left":         theme.NavigateBackIcon(),
			"arrow.down.circle":  theme.DownloadIcon(),
			"rectangle.portrait": theme.ComputerIcon(),
			"xmark":              theme.CancelIcon(),
			"trash":              theme.DeleteIcon(),
			"plus":               theme.ContentAddIcon(),
		},
	}
}

// Has reports whether name maps to a known icon.
func (am *Manager) Has(name string) bool {
	_, ok := am.icons[normalize(name)]
	return ok
}

// GetIcon returns the resource for name. Unknown names fall back to the
// question mark icon so a tab with an unmapped symbol still renders.
func (am *Manager) GetIcon(name string) fyne.Resource {
	if res, ok := am.icons[normalize(name)]; ok {
		return res
	}
	if name != "" {
		log.Debugf("No icon mapped for %q, using fallback", name)
	}
	return theme.QuestionIcon()
}

// SetIcon adds or replaces a mapping.
func (am *Manager) SetIcon(name string, res fyne.Resource) {
	am.icons[normalize(name)] = res
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
