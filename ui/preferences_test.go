package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/ui/setting"
)

func TestPreferencesWindow(t *testing.T) {
	f := newFixture(t,
		extension.Descriptor{ID: "a", Name: "Alpha", Factory: extension.Static(newStub("a", "", extension.SurfaceSettings))},
		extension.Descriptor{ID: "b", Name: "Bravo", Factory: extension.Static(newStub("b", ""))},
	)

	f.host.CreatePreferencesWindow()
	w := f.host.prefsWindow
	require.NotNil(t, w)

	f.host.CreatePreferencesWindow()
	assert.Same(t, w, f.host.prefsWindow, "a second call focuses the open window")

	w.Close()
	assert.Nil(t, f.host.prefsWindow)
}

func TestExtensionPreferences(t *testing.T) {
	f := newFixture(t,
		extension.Descriptor{ID: "a", Name: "Alpha", Factory: extension.Static(newStub("a", "", extension.SurfaceSettings))},
		extension.Descriptor{ID: "b", Name: "Bravo", Factory: extension.Static(newStub("b", ""))},
	)
	w := test.NewWindow(nil)
	defer w.Close()
	sm := NewSettingsManager(w)

	section := f.host.createExtensionPreferences(sm)

	var settingsSurfaces []string
	for _, o := range section.Objects {
		if padded, ok := o.(*fyne.Container); ok && len(padded.Objects) == 1 {
			settingsSurfaces = append(settingsSurfaces, labelText(padded.Objects[0]))
		}
	}
	assert.Equal(t, []string{"a:Settings"}, settingsSurfaces, "declined settings surfaces are left out")
}

func TestSettingsManager(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()
	sm := NewSettingsManager(w)
	header := container.NewVBox()

	applied := []bool{}
	refreshed := 0
	sm.RegisterRefreshFunc(func() { refreshed++ })

	check := sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "flag",
		InitialValue: false,
		Label:        widget.NewLabel("Flag"),
		ApplyFunc:    func(b bool) { applied = append(applied, b) },
		NeedsRefresh: true,
	}, header)
	apply := sm.GetApplySettingsButton()
	assert.True(t, apply.Disabled())

	check.SetChecked(true)
	assert.False(t, apply.Disabled())

	check.SetChecked(false)
	assert.True(t, apply.Disabled(), "reverting unstages the change")

	check.SetChecked(true)
	test.Tap(apply)
	assert.Equal(t, []bool{true}, applied)
	assert.Equal(t, 1, refreshed)
	assert.True(t, apply.Disabled())

	t.Run("Select", func(t *testing.T) {
		var got int
		sel := sm.CreateSelectSetting(&setting.SelectConfig{
			Name:         "choice",
			Options:      []string{"one", "two"},
			InitialValue: 0,
			ApplyFunc:    func(i int) { got = i },
		}, header)
		assert.Equal(t, "one", sel.Selected)
		sel.SetSelectedIndex(1)
		test.Tap(apply)
		assert.Equal(t, 1, got)
	})

	t.Run("Invalid text is not staged", func(t *testing.T) {
		var got string
		entry := sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
			Name:         "addr",
			InitialValue: "127.0.0.1:1",
			Validator:    validateListenAddr,
			ApplyFunc:    func(s string) { got = s },
		}, header)

		entry.SetText("nope")
		assert.True(t, apply.Disabled())

		entry.SetText("127.0.0.1:2")
		assert.False(t, apply.Disabled())
		test.Tap(apply)
		assert.Equal(t, "127.0.0.1:2", got)
	})
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{"127.0.0.1:49452", false},
		{"localhost:8080", false},
		{":8080", false},
		{"[::1]:8080", false},
		{"127.0.0.1", true},
		{"127.0.0.1:", true},
		{"not a host:80", true},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			err := validateListenAddr(tt.addr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
