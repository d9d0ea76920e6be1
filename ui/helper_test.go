package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/zalando/go-keyring"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/util"
)

// stubProvider renders a label for the surfaces it supports.
type stubProvider struct {
	extension.Base
	text     string
	surfaces map[extension.SurfaceKind]bool
	views    int
}

func (p *stubProvider) View(kind extension.SurfaceKind, _ extension.Context) extension.Content {
	p.views++
	if !p.surfaces[kind] {
		return nil
	}
	return widget.NewLabel(p.text + ":" + kind.String())
}

func newStub(text, icon string, kinds ...extension.SurfaceKind) *stubProvider {
	p := &stubProvider{Base: extension.Base{Icon: icon}, text: text, surfaces: map[extension.SurfaceKind]bool{}}
	for _, k := range kinds {
		p.surfaces[k] = true
	}
	return p
}

type fixture struct {
	app      fyne.App
	cfg      *config.AppConfig
	registry *extension.Registry
	host     *NotchApp
}

func noUpdates(context.Context) (*util.CheckForUpdatesResult, error) {
	return &util.CheckForUpdatesResult{CurrentVersion: "v1.0.0", LatestVersion: "v1.0.0"}, nil
}

// newFixture registers catalog into a fresh registry and builds the host.
func newFixture(t *testing.T, catalog ...extension.Descriptor) *fixture {
	t.Helper()
	keyring.MockInit()
	a := test.NewTempApp(t)
	cfg := config.NewAppConfig(a.Preferences())
	reg := extension.NewRegistry()
	SyncExtensions(reg, catalog, cfg.IsExtensionEnabled)

	host := NewNotchApp(Options{
		App:          a,
		Config:       cfg,
		Registry:     reg,
		Catalog:      catalog,
		CheckUpdates: noUpdates,
	})
	return &fixture{app: a, cfg: cfg, registry: reg, host: host}
}

func labelText(o fyne.CanvasObject) string {
	if l, ok := o.(*widget.Label); ok {
		return l.Text
	}
	return ""
}
