// Package hud is the built-in volume and brightness HUD extension. It has no
// tab; the host shows its HUD surface when system HUD replacement is on.
package hud

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
)

// ID is the extension id.
const ID = "hud"

// MutedText replaces the volume level while muted.
const MutedText = "Muted"

// Descriptor returns the HUD extension descriptor. style is read on every
// pass so preference changes apply without re-registering; nil means the
// default progress bar.
func Descriptor(style func() config.HUDStyle) extension.Descriptor {
	return extension.Descriptor{
		ID:   ID,
		Name: "Volume & Brightness HUD",
		Factory: func() (extension.Provider, error) {
			return NewProvider(style), nil
		},
	}
}

// Provider renders the HUD and a read-only level summary for settings.
type Provider struct {
	extension.Base
	style func() config.HUDStyle
}

// NewProvider creates a HUD provider.
func NewProvider(style func() config.HUDStyle) *Provider {
	return &Provider{style: style}
}

// View renders the HUD and settings surfaces.
func (p *Provider) View(kind extension.SurfaceKind, ctx extension.Context) extension.Content {
	switch kind {
	case extension.SurfaceHUD:
		return p.hudView(ctx.Status)
	case extension.SurfaceSettings:
		return settingsView(ctx.Status)
	default:
		return nil
	}
}

func (p *Provider) currentStyle() config.HUDStyle {
	if p.style == nil {
		return config.HUDStyleProgress
	}
	return p.style()
}

func (p *Provider) hudView(s status.Snapshot) fyne.CanvasObject {
	style := p.currentStyle()

	volIcon := theme.VolumeUpIcon()
	if s.Muted {
		volIcon = theme.VolumeMuteIcon()
	}
	return container.NewVBox(
		row(volIcon, indicator(s.Volume, s.Muted, style)),
		row(theme.VisibilityIcon(), indicator(s.Brightness, false, style)),
	)
}

func row(icon fyne.Resource, ind fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewIcon(icon), nil, ind)
}

// indicator draws one level in the given style.
func indicator(level float64, muted bool, style config.HUDStyle) fyne.CanvasObject {
	if muted {
		level = 0
	}

	switch style {
	case config.HUDStylePercentage:
		text := fmt.Sprintf("%d%%", status.Percent(level))
		if muted {
			text = MutedText
		}
		label := widget.NewLabel(text)
		label.Alignment = fyne.TextAlignTrailing
		label.TextStyle = fyne.TextStyle{Monospace: true}
		return label
	case config.HUDStyleMinimal:
		bar := widget.NewProgressBar()
		bar.TextFormatter = func() string { return "" }
		bar.SetValue(level)
		return bar
	default:
		bar := widget.NewProgressBar()
		bar.SetValue(level)
		return bar
	}
}

func settingsView(s status.Snapshot) fyne.CanvasObject {
	volume := fmt.Sprintf("Volume: %d%%", status.Percent(s.Volume))
	if s.Muted {
		volume += " (muted)"
	}
	lines := []fyne.CanvasObject{
		widget.NewLabel(volume),
		widget.NewLabel(fmt.Sprintf("Brightness: %d%%", status.Percent(s.Brightness))),
	}
	if s.Source != "" {
		last := widget.NewLabel(fmt.Sprintf("Last change from %s", s.Source))
		last.Importance = widget.LowImportance
		lines = append(lines, last)
	}
	return container.NewVBox(lines...)
}
