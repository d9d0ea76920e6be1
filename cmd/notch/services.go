package main

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"golang.org/x/sync/errgroup"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/api"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/hotkey"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/osd"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
	"github.com/TheBoredTeam/boring.notch-sub003/ui"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

const shutdownTimeout = 3 * time.Second

// startServices launches the optional background services on g. Each one
// stops when ctx is cancelled.
func startServices(ctx context.Context, g *errgroup.Group, cfg *config.AppConfig, levels *status.Model, host *ui.NotchApp) {
	if cfg.GetOSDListenerEnabled() {
		token, err := cfg.EnsureOSDToken()
		if err != nil {
			log.Printf("OSD listener runs without a token: %v", err)
		}
		startOSDListener(ctx, g, cfg.GetOSDListenerAddr(), token, levels, host)
	}

	if cfg.GetHotkeysEnabled() {
		g.Go(func() error {
			stop := hotkey.StartListeners(hotkey.Actions{
				NextTab:     func() { fyne.Do(host.NextTab) },
				PrevTab:     func() { fyne.Do(host.PrevTab) },
				TogglePanel: func() { fyne.Do(host.TogglePanel) },
			})
			<-ctx.Done()
			stop()
			return nil
		})
	}

	if cfg.GetUpdateCheckEnabled() {
		host.CheckForUpdates(ctx, false)
	}
}

func startOSDListener(ctx context.Context, g *errgroup.Group, addr, token string, levels *status.Model, host *ui.NotchApp) {
	srv := api.NewServer(addr)
	srv.SetToken(token)
	srv.SetNotificationHandler(func(n osd.Notification) error {
		return n.Apply(levels)
	})
	// Echo local changes so bridges can keep their own OSD in sync.
	levels.AddListener(func(s status.Snapshot) {
		if s.Source != status.SourceOSD {
			srv.BroadcastStatus(s)
		}
	})

	g.Go(func() error {
		if err := srv.Start(); err != nil {
			// A busy port must not take the hotkeys down with it.
			log.Printf("OSD listener on %s failed: %v", addr, err)
			fyne.Do(func() {
				host.Notify(config.AppName, fmt.Sprintf("OSD listener could not start on %s.", addr))
			})
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})
}
