package config

import (
	"os/user"
	"slices"

	"fyne.io/fyne/v2"
)

// HUDStyle selects how the notch HUD draws a level.
type HUDStyle int

const (
	// HUDStyleMinimal shows the icon and a bar without text.
	HUDStyleMinimal HUDStyle = iota
	// HUDStyleProgress shows the icon and a progress bar.
	HUDStyleProgress
	// HUDStylePercentage shows the icon and the level as a number.
	HUDStylePercentage
)

// HUDStyles returns every HUD style in display order.
func HUDStyles() []HUDStyle {
	return []HUDStyle{HUDStyleMinimal, HUDStyleProgress, HUDStylePercentage}
}

// String returns the string representation of the HUD style.
func (s HUDStyle) String() string {
	switch s {
	case HUDStyleMinimal:
		return "Minimal"
	case HUDStyleProgress:
		return "Progress Bar"
	case HUDStylePercentage:
		return "Percentage"
	default:
		return "Unknown"
	}
}

// Preference keys.
const (
	HUDReplacementKey     = "hud_replacement_enabled"
	HUDStyleKey           = "hud_style"
	OSDListenerEnabledKey = "osd_listener_enabled"
	OSDListenerAddrKey    = "osd_listener_addr"
	HotkeysEnabledKey     = "hotkeys_enabled"
	UpdateCheckEnabledKey = "app_update_check_enabled"
	LastTabKey            = "last_tab_id"
	DisabledExtensionsKey = "disabled_extensions"
)

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs  fyne.Preferences
	userid string
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	c := &AppConfig{prefs: p, userid: AppID}
	if u, err := user.Current(); err == nil {
		c.userid = u.Uid
	}
	return c
}

// Preferences returns the underlying preferences store.
func (c *AppConfig) Preferences() fyne.Preferences {
	return c.prefs
}

// GetHUDReplacementEnabled returns whether the notch draws its own volume/brightness HUD.
func (c *AppConfig) GetHUDReplacementEnabled() bool {
	return c.prefs.BoolWithFallback(HUDReplacementKey, true)
}

// SetHUDReplacementEnabled sets whether the notch draws its own HUD.
func (c *AppConfig) SetHUDReplacementEnabled(enabled bool) {
	c.prefs.SetBool(HUDReplacementKey, enabled)
}

// GetHUDStyle returns the HUD style, falling back to the progress bar for unknown values.
func (c *AppConfig) GetHUDStyle() HUDStyle {
	s := HUDStyle(c.prefs.IntWithFallback(HUDStyleKey, int(HUDStyleProgress)))
	if s < HUDStyleMinimal || s > HUDStylePercentage {
		return HUDStyleProgress
	}
	return s
}

// SetHUDStyle sets the HUD style.
func (c *AppConfig) SetHUDStyle(s HUDStyle) {
	c.prefs.SetInt(HUDStyleKey, int(s))
}

// GetOSDListenerEnabled returns whether the local OSD listener should run.
func (c *AppConfig) GetOSDListenerEnabled() bool {
	return c.prefs.BoolWithFallback(OSDListenerEnabledKey, false)
}

// SetOSDListenerEnabled sets whether the local OSD listener should run.
func (c *AppConfig) SetOSDListenerEnabled(enabled bool) {
	c.prefs.SetBool(OSDListenerEnabledKey, enabled)
}

// GetOSDListenerAddr returns the listen address of the OSD listener.
func (c *AppConfig) GetOSDListenerAddr() string {
	return c.prefs.StringWithFallback(OSDListenerAddrKey, DefaultOSDListenAddr)
}

// SetOSDListenerAddr sets the listen address of the OSD listener.
func (c *AppConfig) SetOSDListenerAddr(addr string) {
	c.prefs.SetString(OSDListenerAddrKey, addr)
}

// GetHotkeysEnabled returns whether global shortcuts are registered.
func (c *AppConfig) GetHotkeysEnabled() bool {
	return c.prefs.BoolWithFallback(HotkeysEnabledKey, true)
}

// SetHotkeysEnabled sets whether global shortcuts are registered.
func (c *AppConfig) SetHotkeysEnabled(enabled bool) {
	c.prefs.SetBool(HotkeysEnabledKey, enabled)
}

// GetUpdateCheckEnabled returns whether the application should check for updates
func (c *AppConfig) GetUpdateCheckEnabled() bool {
	return c.prefs.BoolWithFallback(UpdateCheckEnabledKey, true)
}

// SetUpdateCheckEnabled sets whether the application should check for updates
func (c *AppConfig) SetUpdateCheckEnabled(enabled bool) {
	c.prefs.SetBool(UpdateCheckEnabledKey, enabled)
}

// GetLastTab returns the id of the tab that was selected when the panel last closed.
func (c *AppConfig) GetLastTab() string {
	return c.prefs.StringWithFallback(LastTabKey, "home")
}

// SetLastTab remembers the selected tab id.
func (c *AppConfig) SetLastTab(id string) {
	c.prefs.SetString(LastTabKey, id)
}

// IsExtensionEnabled reports whether the user left the extension switched on.
func (c *AppConfig) IsExtensionEnabled(id string) bool {
	return !slices.Contains(c.prefs.StringList(DisabledExtensionsKey), id)
}

// SetExtensionEnabled switches an extension on or off.
func (c *AppConfig) SetExtensionEnabled(id string, enabled bool) {
	disabled := c.prefs.StringList(DisabledExtensionsKey)
	i := slices.Index(disabled, id)
	switch {
	case enabled && i >= 0:
		disabled = slices.Delete(slices.Clone(disabled), i, i+1)
	case !enabled && i < 0:
		disabled = append(slices.Clone(disabled), id)
	default:
		return
	}
	c.prefs.SetStringList(DisabledExtensionsKey, disabled)
}
