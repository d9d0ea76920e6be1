package ui

import (
	"errors"
	"fmt"
	"net"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/ui/setting"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// CreatePreferencesWindow opens the preferences window, or focuses it when
// already open.
func (na *NotchApp) CreatePreferencesWindow() {
	if na.prefsWindow != nil {
		na.prefsWindow.RequestFocus()
		return
	}

	w := na.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	w.Resize(prefsSize)
	w.CenterOnScreen()
	w.SetOnClosed(func() {
		na.prefsWindow = nil
		na.os.TransformToBackground()
	})
	na.prefsWindow = w

	sm := NewSettingsManager(w)
	sm.RegisterRefreshFunc(na.Refresh)

	body := container.NewVBox(
		na.createAppPreferences(sm),
		widget.NewSeparator(),
		na.createExtensionPreferences(sm),
	)
	closeButton := widget.NewButton("Close", w.Close)
	footer := container.NewHBox(layout.NewSpacer(), sm.GetApplySettingsButton(), closeButton)

	w.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewVScroll(body)))
	na.os.TransformToForeground()
	w.Show()
}

func (na *NotchApp) createAppPreferences(sm setting.SettingsManager) *fyne.Container {
	header := container.NewVBox(sm.CreateSectionTitleLabel("Notch"))

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "hudReplacement",
		InitialValue: na.cfg.GetHUDReplacementEnabled(),
		Label:        sm.CreateSettingTitleLabel("Replace system HUD:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Show volume and brightness changes in the notch."),
		ApplyFunc:    na.cfg.SetHUDReplacementEnabled,
		NeedsRefresh: true,
	}, header)

	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "hudStyle",
		Options:      setting.StringOptions(config.HUDStyles()),
		InitialValue: int(na.cfg.GetHUDStyle()),
		Label:        sm.CreateSettingTitleLabel("HUD style:"),
		ApplyFunc: func(idx int) {
			na.cfg.SetHUDStyle(config.HUDStyle(idx))
		},
		NeedsRefresh: true,
	}, header)

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "hotkeys",
		InitialValue: na.cfg.GetHotkeysEnabled(),
		Label:        sm.CreateSettingTitleLabel("Global shortcuts:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Ctrl/Cmd+Alt+Left/Right switch tabs, Ctrl/Cmd+Alt+Down shows the notch. Applies after restart."),
		ApplyFunc:    na.cfg.SetHotkeysEnabled,
	}, header)

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "updateCheck",
		InitialValue: na.cfg.GetUpdateCheckEnabled(),
		Label:        sm.CreateSettingTitleLabel("Check for updates at startup:"),
		ApplyFunc:    na.cfg.SetUpdateCheckEnabled,
	}, header)

	header.Add(sm.CreateSectionTitleLabel("OSD Listener"))
	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "osdListener",
		InitialValue: na.cfg.GetOSDListenerEnabled(),
		Label:        sm.CreateSettingTitleLabel("Accept OSD events:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Let a local display-control bridge push volume and brightness changes. Applies after restart."),
		ApplyFunc:    na.cfg.SetOSDListenerEnabled,
	}, header)

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "osdListenerAddr",
		InitialValue: na.cfg.GetOSDListenerAddr(),
		PlaceHolder:  config.DefaultOSDListenAddr,
		Label:        sm.CreateSettingTitleLabel("Listen address:"),
		Validator:    validateListenAddr,
		ApplyFunc:    na.cfg.SetOSDListenerAddr,
	}, header)

	token, err := na.cfg.GetOSDToken()
	if err != nil {
		log.Printf("OSD token unavailable: %v", err)
	}
	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "osdToken",
		InitialValue: token,
		PlaceHolder:  "Generated when the listener starts",
		Label:        sm.CreateSettingTitleLabel("Bridge token:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Stored in the system keyring. Bridges send it as a bearer token."),
		ApplyFunc: func(s string) {
			if err := na.cfg.SetOSDToken(s); err != nil {
				log.Printf("failed to save OSD token: %v", err)
			}
		},
	}, header)

	return header
}

// createExtensionPreferences lists every catalog extension with an enable
// toggle and, when installed, its settings surface.
func (na *NotchApp) createExtensionPreferences(sm setting.SettingsManager) *fyne.Container {
	header := container.NewVBox(sm.CreateSectionTitleLabel("Extensions"))
	ctx := na.assembler.Assemble()

	for _, d := range na.catalog {
		id := d.ID
		sm.CreateBoolSetting(&setting.BoolConfig{
			Name:         "extension:" + id,
			InitialValue: na.cfg.IsExtensionEnabled(id),
			Label:        sm.CreateSettingTitleLabel(d.Name),
			ApplyFunc: func(enabled bool) {
				na.SetExtensionEnabled(id, enabled)
			},
		}, header)

		if _, installed := na.registry.Lookup(id); !installed {
			continue
		}
		content := na.resolver.Resolve(id, extension.SurfaceSettings, ctx)
		if extension.IsPlaceholder(content) {
			continue
		}
		header.Add(container.NewPadded(content))
	}
	return header
}

func validateListenAddr(s string) error {
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		return err
	}
	if port == "" {
		return errors.New("port is required")
	}
	if ip := net.ParseIP(host); host != "" && host != "localhost" && ip == nil {
		return fmt.Errorf("invalid host %q", host)
	}
	return nil
}
