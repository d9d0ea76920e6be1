package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestAppConfig(t *testing.T) {
	cfg := NewAppConfig(test.NewApp().Preferences())

	t.Run("HUDReplacement", func(t *testing.T) {
		// Default should be true
		assert.True(t, cfg.GetHUDReplacementEnabled())

		cfg.SetHUDReplacementEnabled(false)
		assert.False(t, cfg.GetHUDReplacementEnabled())
	})

	t.Run("HUDStyle", func(t *testing.T) {
		assert.Equal(t, HUDStyleProgress, cfg.GetHUDStyle())

		cfg.SetHUDStyle(HUDStylePercentage)
		assert.Equal(t, HUDStylePercentage, cfg.GetHUDStyle())

		// Out of range values fall back to the default
		cfg.Preferences().SetInt(HUDStyleKey, 42)
		assert.Equal(t, HUDStyleProgress, cfg.GetHUDStyle())
	})

	t.Run("OSDListener", func(t *testing.T) {
		assert.False(t, cfg.GetOSDListenerEnabled())
		assert.Equal(t, DefaultOSDListenAddr, cfg.GetOSDListenerAddr())

		cfg.SetOSDListenerEnabled(true)
		cfg.SetOSDListenerAddr("127.0.0.1:5000")
		assert.True(t, cfg.GetOSDListenerEnabled())
		assert.Equal(t, "127.0.0.1:5000", cfg.GetOSDListenerAddr())
	})

	t.Run("Hotkeys", func(t *testing.T) {
		assert.True(t, cfg.GetHotkeysEnabled())
		cfg.SetHotkeysEnabled(false)
		assert.False(t, cfg.GetHotkeysEnabled())
	})

	t.Run("UpdateCheck", func(t *testing.T) {
		// Default should be true
		assert.True(t, cfg.GetUpdateCheckEnabled())

		cfg.SetUpdateCheckEnabled(false)
		assert.False(t, cfg.GetUpdateCheckEnabled())
	})

	t.Run("LastTab", func(t *testing.T) {
		assert.Equal(t, "home", cfg.GetLastTab())
		cfg.SetLastTab("reminders")
		assert.Equal(t, "reminders", cfg.GetLastTab())
	})

	t.Run("ExtensionEnabled", func(t *testing.T) {
		assert.True(t, cfg.IsExtensionEnabled("mirror"))

		cfg.SetExtensionEnabled("mirror", false)
		cfg.SetExtensionEnabled("mirror", false)
		assert.False(t, cfg.IsExtensionEnabled("mirror"))
		assert.Equal(t, []string{"mirror"}, cfg.Preferences().StringList(DisabledExtensionsKey))

		cfg.SetExtensionEnabled("mirror", true)
		assert.True(t, cfg.IsExtensionEnabled("mirror"))
		assert.Empty(t, cfg.Preferences().StringList(DisabledExtensionsKey))
	})
}

func TestHUDStyleString(t *testing.T) {
	tests := []struct {
		style    HUDStyle
		expected string
	}{
		{HUDStyleMinimal, "Minimal"},
		{HUDStyleProgress, "Progress Bar"},
		{HUDStylePercentage, "Percentage"},
		{HUDStyle(9), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.style.String())
		})
	}
	assert.Len(t, HUDStyles(), 3)
}
