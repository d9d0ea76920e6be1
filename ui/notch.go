// Package ui is the notch host: the panel window with its extension tabs,
// the tray menu and the preferences window.
package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/TheBoredTeam/boring.notch-sub003/asset"
	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/util"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// UpdateChecker fetches release information.
type UpdateChecker func(ctx context.Context) (*util.CheckForUpdatesResult, error)

// Options configures a NotchApp. App, Config and Registry are required.
type Options struct {
	App      fyne.App
	Config   *config.AppConfig
	Registry *extension.Registry
	// Catalog lists every extension the user can enable in Preferences.
	Catalog []extension.Descriptor
	// Assembler supplies per-pass host state. A nil Geometry getter is
	// replaced with the panel's content size.
	Assembler extension.Assembler
	Assets    *asset.Manager
	// CheckUpdates defaults to util.CheckForUpdates with the default client.
	CheckUpdates UpdateChecker
}

// NotchApp owns the host windows. All methods must run on the UI goroutine
// unless noted otherwise.
type NotchApp struct {
	app       fyne.App
	cfg       *config.AppConfig
	registry  *extension.Registry
	resolver  *extension.Resolver
	catalog   []extension.Descriptor
	assembler extension.Assembler
	assets    *asset.Manager
	os        OS

	panel        fyne.Window
	panelVisible bool
	tabs         *container.AppTabs
	builtTabs    []extension.Tab
	hud          *fyne.Container
	built        bool

	trayMenu     *fyne.Menu
	updateItem   *fyne.MenuItem
	prefsWindow  fyne.Window
	checkUpdates UpdateChecker
	checking     *util.SafeFlag
}

// NewNotchApp creates the host and its panel window. The panel stays hidden
// until ShowPanel.
func NewNotchApp(opts Options) *NotchApp {
	na := &NotchApp{
		app:          opts.App,
		cfg:          opts.Config,
		registry:     opts.Registry,
		resolver:     extension.NewResolver(opts.Registry),
		catalog:      opts.Catalog,
		assembler:    opts.Assembler,
		assets:       opts.Assets,
		os:           getOS(),
		checkUpdates: opts.CheckUpdates,
		checking:     util.NewSafeBool(),
	}
	if na.assets == nil {
		na.assets = asset.NewManager()
	}
	if na.checkUpdates == nil {
		na.checkUpdates = func(ctx context.Context) (*util.CheckForUpdatesResult, error) {
			return util.CheckForUpdates(ctx, nil)
		}
	}
	if na.assembler.Geometry == nil {
		na.assembler.Geometry = na.contentGeometry
	}

	na.buildPanel()
	na.createTrayMenu()
	na.os.SetupLifecycle(na.app, na)
	return na
}

// Registry returns the extension registry the host renders.
func (na *NotchApp) Registry() *extension.Registry {
	return na.registry
}

// Run refreshes the panel and blocks in the fyne event loop.
func (na *NotchApp) Run() {
	na.Refresh()
	na.app.Run()
}

// Quit stops the event loop.
func (na *NotchApp) Quit() {
	na.app.Quit()
}

// Notify shows a desktop notification. Safe from any goroutine.
func (na *NotchApp) Notify(title, message string) {
	na.app.SendNotification(fyne.NewNotification(title, message))
}

func (na *NotchApp) isDesktop() (desktop.App, bool) {
	d, ok := na.app.(desktop.App)
	return d, ok
}

// SetExtensionEnabled persists the choice and installs or removes the
// catalog entry.
func (na *NotchApp) SetExtensionEnabled(id string, enabled bool) {
	na.cfg.SetExtensionEnabled(id, enabled)
	if n := SyncExtensions(na.registry, na.catalog, na.cfg.IsExtensionEnabled); n > 0 {
		log.Printf("Extension %s enabled=%t", id, enabled)
	}
	na.Refresh()
}
