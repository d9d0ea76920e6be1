package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

func newWrappedLabel(desc string, importance widget.Importance, style fyne.TextStyle) *widget.Label {
	label := widget.NewLabel(desc)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = importance
	label.TextStyle = style
	return label
}

// CreateSectionTitleLabel creates a bold, highlighted section heading.
func (sm *SettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return newWrappedLabel(desc, widget.HighImportance, fyne.TextStyle{Bold: true})
}

// CreateSettingTitleLabel creates the label shown left of a setting.
func (sm *SettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return newWrappedLabel(desc, widget.MediumImportance, fyne.TextStyle{Bold: true})
}

// CreateSettingDescriptionLabel creates the help text under a setting.
func (sm *SettingsManager) CreateSettingDescriptionLabel(desc string) fyne.CanvasObject {
	return newWrappedLabel(desc, widget.LowImportance, fyne.TextStyle{Italic: true})
}
