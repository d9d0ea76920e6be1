//go:build !darwin && !linux && !windows

package ui

import "fyne.io/fyne/v2"

type otherOS struct{}

func (o *otherOS) TransformToForeground()             {}
func (o *otherOS) TransformToBackground()             {}
func (o *otherOS) SetupLifecycle(fyne.App, *NotchApp) {}

func getOS() OS {
	return &otherOS{}
}
