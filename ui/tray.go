package ui

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"fyne.io/fyne/v2"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/util"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

const updateCheckTimeout = 30 * time.Second

func (na *NotchApp) createTrayMenu() {
	na.trayMenu = fyne.NewMenu(config.AppName,
		na.createMenuItem(menuShowNotch, na.TogglePanel, "rectangle.portrait"),
		fyne.NewMenuItemSeparator(),
		na.createMenuItem(menuNextTab, na.NextTab, "arrow.right"),
		na.createMenuItem(menuPrevTab, na.PrevTab, "arrow.left"),
		fyne.NewMenuItemSeparator(),
		na.createMenuItem(menuPreferences, na.CreatePreferencesWindow, "gearshape"),
		na.createMenuItem(menuCheckUpdates, func() {
			na.CheckForUpdates(context.Background(), true)
		}, "arrow.down.circle"),
		fyne.NewMenuItemSeparator(),
		na.createMenuItem(menuQuit, na.Quit, "xmark"),
	)

	if desk, ok := na.isDesktop(); ok {
		desk.SetSystemTrayMenu(na.trayMenu)
		desk.SetSystemTrayIcon(na.assets.GetIcon("rectangle.portrait"))
	} else {
		log.Println("Tray icon not supported on this platform")
	}
}

func (na *NotchApp) createMenuItem(label string, action func(), iconName string) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, action)
	mi.Icon = na.assets.GetIcon(iconName)
	return mi
}

// TrayMenu returns the tray menu.
func (na *NotchApp) TrayMenu() *fyne.Menu {
	return na.trayMenu
}

func (na *NotchApp) refreshTrayMenu() {
	na.trayMenu.Refresh()
	if desk, ok := na.isDesktop(); ok {
		desk.SetSystemTrayMenu(na.trayMenu)
	}
}

// CheckForUpdates runs the update check in the background. Concurrent calls
// are dropped. When interactive is false, only an available update is
// reported. Safe from any goroutine.
func (na *NotchApp) CheckForUpdates(ctx context.Context, interactive bool) {
	if !na.checking.TryAcquire() {
		log.Debug("Update check already running")
		return
	}
	go func() {
		defer na.checking.Set(false)

		ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
		defer cancel()
		result, err := na.checkUpdates(ctx)
		fyne.Do(func() {
			na.handleUpdateResult(result, err, interactive)
		})
	}()
}

func (na *NotchApp) handleUpdateResult(result *util.CheckForUpdatesResult, err error, interactive bool) {
	if err != nil {
		log.Printf("Update check failed: %v", err)
		if interactive {
			na.Notify(config.AppName, "Could not check for updates.")
		}
		return
	}

	if !result.UpdateAvailable {
		log.Debugf("Up to date (%s, latest %s)", result.CurrentVersion, result.LatestVersion)
		if interactive {
			na.Notify(config.AppName, fmt.Sprintf("You are running the latest version (%s).", result.CurrentVersion))
		}
		return
	}

	log.Printf("Update available: %s -> %s", result.CurrentVersion, result.LatestVersion)
	na.showUpdateItem(result)
	na.Notify(config.AppName, fmt.Sprintf("Version %s is available.", result.LatestVersion))
}

// showUpdateItem puts an "Update to" entry at the top of the tray menu.
func (na *NotchApp) showUpdateItem(result *util.CheckForUpdatesResult) {
	label := updateMenuItemPrefix + result.LatestVersion
	action := func() {
		u, err := url.Parse(result.ReleaseURL)
		if err != nil {
			log.Printf("Bad release URL %q: %v", result.ReleaseURL, err)
			return
		}
		if err := na.app.OpenURL(u); err != nil {
			log.Printf("Failed to open release page: %v", err)
		}
	}

	if na.updateItem != nil {
		na.updateItem.Label = label
		na.updateItem.Action = action
	} else {
		na.updateItem = na.createMenuItem(label, action, "arrow.down.circle")
		na.trayMenu.Items = append([]*fyne.MenuItem{na.updateItem, fyne.NewMenuItemSeparator()}, na.trayMenu.Items...)
	}
	na.refreshTrayMenu()
}
