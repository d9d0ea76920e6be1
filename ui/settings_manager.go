package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/ui/setting"
)

// SettingsManager stages preference edits and applies them together when
// the user presses Apply.
type SettingsManager struct {
	pending      map[string]func()
	refreshFlags map[string]bool
	refreshFuncs []func()
	applyButton  *widget.Button
	prefsWindow  fyne.Window
}

// NewSettingsManager creates a manager for window.
func NewSettingsManager(window fyne.Window) setting.SettingsManager {
	sm := &SettingsManager{
		pending:      make(map[string]func()),
		refreshFlags: make(map[string]bool),
		prefsWindow:  window,
	}
	sm.applyButton = widget.NewButton("Apply Changes", sm.apply)
	sm.applyButton.Importance = widget.HighImportance
	sm.applyButton.Disable()
	return sm
}

func (sm *SettingsManager) apply() {
	for _, fn := range sm.pending {
		fn()
	}
	sm.pending = make(map[string]func())

	if len(sm.refreshFlags) > 0 {
		for _, rf := range sm.refreshFuncs {
			rf()
		}
		sm.refreshFlags = make(map[string]bool)
	}
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if len(sm.pending) > 0 || len(sm.refreshFlags) > 0 {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// stage records or clears the pending change for name.
func (sm *SettingsManager) stage(name string, changed, needsRefresh bool, apply func()) {
	if changed {
		sm.SetSettingChangedCallback(name, apply)
		if needsRefresh {
			sm.SetRefreshFlag(name)
		}
	} else {
		sm.RemoveSettingChangedCallback(name)
		if needsRefresh {
			sm.UnsetRefreshFlag(name)
		}
	}
	sm.checkAndEnableApply()
}

// GetApplySettingsButton returns the Apply Changes button.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// CreateSelectSetting adds a select row to header.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) *widget.Select {
	sel := widget.NewSelect(cfg.Options, nil)
	if cfg.InitialValue >= 0 && cfg.InitialValue < len(cfg.Options) {
		sel.SetSelectedIndex(cfg.InitialValue)
	}
	addRow(header, cfg.Label, sel, cfg.HelpContent)

	sel.OnChanged = func(s string) {
		idx := sel.SelectedIndex()
		sm.stage(cfg.Name, idx != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(idx)
			cfg.InitialValue = idx
		})
		if cfg.OnChanged != nil {
			cfg.OnChanged(s, idx)
		}
	}
	return sel
}

// CreateBoolSetting adds a check box row to header.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil)
	check.SetChecked(cfg.InitialValue)
	addRow(header, cfg.Label, check, cfg.HelpContent)

	check.OnChanged = func(b bool) {
		sm.stage(cfg.Name, b != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(b)
			cfg.InitialValue = b
		})
		if cfg.OnChanged != nil {
			cfg.OnChanged(b)
		}
	}
	return check
}

// CreateTextEntrySetting adds a validated entry row to header. Invalid text
// is never staged.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	entry.Validator = cfg.Validator
	addRow(header, cfg.Label, entry, cfg.HelpContent)

	entry.OnChanged = func(s string) {
		valid := cfg.Validator == nil || cfg.Validator(s) == nil
		sm.stage(cfg.Name, valid && s != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(s)
			cfg.InitialValue = s
		})
	}
	return entry
}

func addRow(header *fyne.Container, label, input, help fyne.CanvasObject) {
	if label == nil {
		header.Add(input)
	} else {
		header.Add(NewSplitRow(label, input, SplitProportion.OneThird))
	}
	if help != nil {
		header.Add(help)
	}
}

// SetSettingChangedCallback stages callback under settingName.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.pending[settingName] = callback
}

// RemoveSettingChangedCallback drops the staged change for settingName.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.pending, settingName)
}

// SetRefreshFlag marks settingName as needing a refresh after apply.
func (sm *SettingsManager) SetRefreshFlag(settingName string) {
	sm.refreshFlags[settingName] = true
}

// UnsetRefreshFlag clears the refresh mark for settingName.
func (sm *SettingsManager) UnsetRefreshFlag(settingName string) {
	delete(sm.refreshFlags, settingName)
}

// RegisterRefreshFunc adds a function run after an apply that needs a refresh.
func (sm *SettingsManager) RegisterRefreshFunc(refreshFunc func()) {
	sm.refreshFuncs = append(sm.refreshFuncs, refreshFunc)
}

// GetSettingsWindow returns the preferences window.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}

// GetCheckAndEnableApplyFunc returns the function that syncs the apply
// button with the staged changes.
func (sm *SettingsManager) GetCheckAndEnableApplyFunc() func() {
	return sm.checkAndEnableApply
}
