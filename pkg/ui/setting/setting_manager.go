// Package setting defines the preferences building blocks shared by the host
// and extension settings pages.
package setting

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsHelper creates the labels used across the preferences window.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label
	CreateSettingTitleLabel(desc string) *widget.Label
	CreateSettingDescriptionLabel(desc string) fyne.CanvasObject
}

// SelectConfig describes a select setting. InitialValue is the selected index.
type SelectConfig struct {
	Name         string
	Options      []string
	InitialValue int
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	OnChanged    func(selected string, index int)
	ApplyFunc    func(index int)
	NeedsRefresh bool
}

// BoolConfig describes a check box setting.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	OnChanged    func(bool)
	ApplyFunc    func(bool)
	NeedsRefresh bool
}

// TextEntrySettingConfig describes a validated text setting.
type TextEntrySettingConfig struct {
	Name         string
	InitialValue string
	PlaceHolder  string
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	Validator    fyne.StringValidator
	ApplyFunc    func(string)
	NeedsRefresh bool
}

// StringOptions converts options into their display strings.
func StringOptions[T fmt.Stringer](options []T) []string {
	out := make([]string, 0, len(options))
	for _, option := range options {
		out = append(out, option.String())
	}
	return out
}

// SettingsManager stages setting changes until the user applies them.
type SettingsManager interface {
	SettingsHelper

	CreateSelectSetting(cfg *SelectConfig, header *fyne.Container) *widget.Select
	CreateBoolSetting(cfg *BoolConfig, header *fyne.Container) *widget.Check
	CreateTextEntrySetting(cfg *TextEntrySettingConfig, header *fyne.Container) *widget.Entry

	GetApplySettingsButton() *widget.Button
	SetSettingChangedCallback(settingName string, callback func())
	RemoveSettingChangedCallback(settingName string)
	SetRefreshFlag(settingName string)
	UnsetRefreshFlag(settingName string)

	// RegisterRefreshFunc adds a function run after an apply that touched a
	// setting flagged NeedsRefresh.
	RegisterRefreshFunc(refreshFunc func())
	GetSettingsWindow() fyne.Window
	GetCheckAndEnableApplyFunc() func()
}
