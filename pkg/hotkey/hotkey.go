// Package hotkey registers the global shortcuts that drive the notch panel.
package hotkey

import (
	"time"

	"golang.design/x/hotkey"

	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// repeatDelay debounces held keys.
const repeatDelay = 200 * time.Millisecond

// Actions are the callbacks bound to shortcuts. Nil actions are skipped.
// Callbacks run on a listener goroutine; callers hop to the UI goroutine.
type Actions struct {
	NextTab     func()
	PrevTab     func()
	TogglePanel func()
}

// Binding pairs a shortcut with its action.
type Binding struct {
	Name   string
	Mods   []hotkey.Modifier
	Key    hotkey.Key
	Action func()
}

// Bindings returns the shortcuts for a, skipping nil actions.
//
//	Ctrl/Cmd + Alt + Right: next tab
//	Ctrl/Cmd + Alt + Left:  previous tab
//	Ctrl/Cmd + Alt + Down:  show or hide the panel
func Bindings(a Actions) []Binding {
	mods := []hotkey.Modifier{modCtrl, modAlt}
	all := []Binding{
		{Name: "Next Tab", Mods: mods, Key: keyRight, Action: a.NextTab},
		{Name: "Previous Tab", Mods: mods, Key: keyLeft, Action: a.PrevTab},
		{Name: "Toggle Panel", Mods: mods, Key: keyDown, Action: a.TogglePanel},
	}
	out := all[:0]
	for _, b := range all {
		if b.Action != nil {
			out = append(out, b)
		}
	}
	return out
}

// StartListeners registers the shortcuts and starts one listener goroutine
// per shortcut. It returns a function that unregisters them all.
func StartListeners(a Actions) (stop func()) {
	if !supported {
		log.Println("Global shortcuts are not supported on this platform")
		return func() {}
	}
	if !HasAccessibility() {
		log.Println("Accessibility permission missing; shortcuts may not fire while other apps are focused")
	}

	var registered []*hotkey.Hotkey
	for _, b := range Bindings(a) {
		hk := hotkey.New(b.Mods, b.Key)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register hotkey %s: %v", b.Name, err)
			continue
		}
		log.Printf("Registered hotkey: %s", b.Name)
		registered = append(registered, hk)

		go func(hk *hotkey.Hotkey, b Binding) {
			for range hk.Keydown() {
				log.Debugf("Hotkey pressed: %s", b.Name)
				b.Action()
				time.Sleep(repeatDelay)
			}
		}(hk, b)
	}

	return func() {
		for _, hk := range registered {
			if err := hk.Unregister(); err != nil {
				log.Printf("Failed to unregister hotkey: %v", err)
			}
		}
	}
}
