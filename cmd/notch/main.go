// Command notch runs the notch host in the system tray.
package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"golang.org/x/sync/errgroup"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/builtin/hud"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/builtin/mirror"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/builtin/reminders"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/camera"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/reminder"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
	"github.com/TheBoredTeam/boring.notch-sub003/ui"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

func main() {
	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)

	a := app.NewWithID(config.AppID)
	cfg := config.NewAppConfig(a.Preferences())

	levels := status.NewModel()
	store := reminder.NewStore(a.Preferences())
	cam := camera.NewTestPattern(640, 360)

	var host *ui.NotchApp
	refresh := func() {
		if host != nil {
			host.Refresh()
		}
	}

	catalog := builtins(cfg, store, refresh)
	registry := extension.NewRegistry()
	ui.SyncExtensions(registry, catalog, cfg.IsExtensionEnabled)

	host = ui.NewNotchApp(ui.Options{
		App:      a,
		Config:   cfg,
		Registry: registry,
		Catalog:  catalog,
		Assembler: extension.Assembler{
			Status:    levels.Snapshot,
			Reminders: store,
			Camera:    cam,
		},
	})

	// Status changes arrive from listener goroutines.
	levels.AddListener(func(status.Snapshot) {
		fyne.Do(host.Refresh)
	})

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	startServices(gctx, g, cfg, levels, host)

	host.Run()

	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("Background service stopped with error: %v", err)
	}
	log.Printf("%s stopped", config.AppName)
}

// builtins returns the extensions shipped with the app, in tab order.
func builtins(cfg *config.AppConfig, store *reminder.Store, onChange func()) []extension.Descriptor {
	return []extension.Descriptor{
		mirror.Descriptor(),
		reminders.Descriptor(store, onChange),
		hud.Descriptor(cfg.GetHUDStyle),
	}
}
