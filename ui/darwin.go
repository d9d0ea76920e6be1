//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

enum {
    policyRegular = 0,   // NSApplicationActivationPolicyRegular
    policyAccessory = 1, // NSApplicationActivationPolicyAccessory
};

// setActivationPolicy switches the Dock presence and re-activates the app so
// the change is committed.
static void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

import "fyne.io/fyne/v2"

type darwinOS struct{}

// TransformToForeground shows the Dock icon.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.policyRegular)
}

// TransformToBackground hides the Dock icon.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.policyAccessory)
}

// SetupLifecycle starts the app as an accessory so only the menu bar item
// and the notch panel are visible.
func (d *darwinOS) SetupLifecycle(app fyne.App, na *NotchApp) {
	app.Lifecycle().SetOnStarted(func() {
		d.TransformToBackground()
	})
}

func getOS() OS {
	return &darwinOS{}
}
