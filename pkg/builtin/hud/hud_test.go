package hud

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
)

func TestDescriptor(t *testing.T) {
	d := Descriptor(nil)
	assert.Equal(t, ID, d.ID)
	assert.Empty(t, d.TabIcon)

	p, err := d.Factory()
	require.NoError(t, err)
	assert.Empty(t, p.TabIcon(), "the HUD never contributes a tab")
	assert.Empty(t, p.TabTitle())
}

func TestIndicator(t *testing.T) {
	test.NewTempApp(t)

	t.Run("Progress", func(t *testing.T) {
		bar, ok := indicator(0.4, false, config.HUDStyleProgress).(*widget.ProgressBar)
		require.True(t, ok)
		assert.InDelta(t, 0.4, bar.Value, 1e-9)
		assert.Nil(t, bar.TextFormatter)
	})

	t.Run("Minimal", func(t *testing.T) {
		bar, ok := indicator(0.4, false, config.HUDStyleMinimal).(*widget.ProgressBar)
		require.True(t, ok)
		require.NotNil(t, bar.TextFormatter)
		assert.Empty(t, bar.TextFormatter())
	})

	t.Run("Percentage", func(t *testing.T) {
		label, ok := indicator(0.456, false, config.HUDStylePercentage).(*widget.Label)
		require.True(t, ok)
		assert.Equal(t, "46%", label.Text)
	})

	t.Run("Muted", func(t *testing.T) {
		label := indicator(0.8, true, config.HUDStylePercentage).(*widget.Label)
		assert.Equal(t, MutedText, label.Text)

		bar := indicator(0.8, true, config.HUDStyleProgress).(*widget.ProgressBar)
		assert.Zero(t, bar.Value)
	})
}

func TestView(t *testing.T) {
	test.NewTempApp(t)
	style := config.HUDStyleProgress
	p := NewProvider(func() config.HUDStyle { return style })
	ctx := extension.Context{Status: status.Snapshot{Volume: 0.5, Brightness: 1, Source: status.SourceOSD}}

	t.Run("Declines navigation tab", func(t *testing.T) {
		assert.Nil(t, p.View(extension.SurfaceNavigationTab, ctx))
	})

	t.Run("HUD follows style changes", func(t *testing.T) {
		hud := p.View(extension.SurfaceHUD, ctx).(*fyne.Container)
		require.Len(t, hud.Objects, 2)

		_, ok := hud.Objects[0].(*fyne.Container).Objects[0].(*widget.ProgressBar)
		assert.True(t, ok)

		style = config.HUDStylePercentage
		hud = p.View(extension.SurfaceHUD, ctx).(*fyne.Container)
		label, ok := hud.Objects[0].(*fyne.Container).Objects[0].(*widget.Label)
		require.True(t, ok)
		assert.Equal(t, "50%", label.Text)
	})

	t.Run("Settings summary", func(t *testing.T) {
		settings := p.View(extension.SurfaceSettings, ctx).(*fyne.Container)
		require.Len(t, settings.Objects, 3)
		assert.Equal(t, "Volume: 50%", settings.Objects[0].(*widget.Label).Text)
		assert.Equal(t, "Brightness: 100%", settings.Objects[1].(*widget.Label).Text)
		assert.Equal(t, "Last change from osd", settings.Objects[2].(*widget.Label).Text)
	})
}
