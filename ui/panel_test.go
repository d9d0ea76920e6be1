package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
)

func TestRefreshBuildsTabs(t *testing.T) {
	a := newStub("a", "", extension.SurfaceNavigationTab)
	b := newStub("b", "", extension.SurfaceNavigationTab)
	c := newStub("c", "web.camera", extension.SurfaceNavigationTab)

	f := newFixture(t,
		extension.Descriptor{ID: "a", Name: "Alpha", TabIcon: "checklist", Factory: extension.Static(a)},
		extension.Descriptor{ID: "b", Name: "Bravo", Factory: extension.Static(b)},
		extension.Descriptor{ID: "c", Name: "Charlie", TabTitle: "Cam", Factory: extension.Static(c)},
	)
	f.host.Refresh()

	assert.Equal(t, []string{extension.HomeTabID, "a", "c"}, f.host.TabIDs())

	items := f.host.tabs.Items
	require.Len(t, items, 3)
	assert.Equal(t, extension.HomeTabTitle, items[0].Text)
	assert.Equal(t, "Alpha", items[1].Text)
	assert.Equal(t, "Cam", items[2].Text)

	assert.False(t, extension.IsPlaceholder(items[0].Content), "home is rendered by the host")
	assert.Equal(t, "a:NavigationTab", labelText(items[1].Content))
	assert.Equal(t, "c:NavigationTab", labelText(items[2].Content))
	assert.Equal(t, extension.HomeTabID, f.host.SelectedTab())
}

func TestRefreshReResolvesContent(t *testing.T) {
	a := newStub("a", "", extension.SurfaceNavigationTab)
	f := newFixture(t, extension.Descriptor{ID: "a", Name: "Alpha", TabIcon: "checklist", Factory: extension.Static(a)})

	f.host.Refresh()
	first := f.host.tabs.Items[1]
	views := a.views

	f.host.Refresh()
	assert.Same(t, first, f.host.tabs.Items[1], "tab strip is kept while the registry is unchanged")
	assert.Greater(t, a.views, views, "content is resolved again on every pass")
}

func TestRefreshRebuildsOnRegistryChange(t *testing.T) {
	a := newStub("a", "", extension.SurfaceNavigationTab)
	f := newFixture(t, extension.Descriptor{ID: "a", Name: "Alpha", TabIcon: "checklist", Factory: extension.Static(a)})
	f.host.Refresh()
	f.host.NextTab()
	require.Equal(t, "a", f.host.SelectedTab())

	d := newStub("d", "", extension.SurfaceNavigationTab)
	require.NoError(t, f.registry.Register(extension.Descriptor{ID: "d", Name: "Delta", TabIcon: "plus", Factory: extension.Static(d)}))
	f.host.Refresh()

	assert.Equal(t, []string{extension.HomeTabID, "a", "d"}, f.host.TabIDs())
	assert.Equal(t, "a", f.host.SelectedTab(), "selection survives a rebuild")

	f.registry.Unregister("a")
	f.host.Refresh()
	assert.Equal(t, []string{extension.HomeTabID, "d"}, f.host.TabIDs())
	assert.Equal(t, extension.HomeTabID, f.host.SelectedTab())
}

func TestRefreshPicksUpRetriedFactory(t *testing.T) {
	calls := 0
	late := newStub("late", "late.icon", extension.SurfaceNavigationTab)
	f := newFixture(t, extension.Descriptor{ID: "late", Name: "Late", Factory: func() (extension.Provider, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("not ready")
		}
		return late, nil
	}})

	f.host.Refresh()
	assert.Equal(t, []string{extension.HomeTabID}, f.host.TabIDs(), "no provider icon yet")

	f.host.Refresh()
	assert.Equal(t, []string{extension.HomeTabID, "late"}, f.host.TabIDs())
	assert.Equal(t, "late:NavigationTab", labelText(f.host.tabs.Items[1].Content))
}

func TestRefreshFollowsProviderTabChanges(t *testing.T) {
	p := newStub("a", "checklist", extension.SurfaceNavigationTab)
	f := newFixture(t, extension.Descriptor{ID: "a", Name: "Alpha", Factory: extension.Static(p)})
	f.host.Refresh()
	require.Equal(t, []string{extension.HomeTabID, "a"}, f.host.TabIDs())

	p.Title = "Renamed"
	f.host.Refresh()
	assert.Equal(t, "Renamed", f.host.tabs.Items[1].Text)

	p.Icon = ""
	f.host.Refresh()
	assert.Equal(t, []string{extension.HomeTabID}, f.host.TabIDs(), "losing the icon drops the tab")
}

func TestDecliningTabShowsPlaceholder(t *testing.T) {
	p := newStub("x", "")
	f := newFixture(t, extension.Descriptor{ID: "x", Name: "X", TabIcon: "checklist", Factory: extension.Static(p)})
	f.host.Refresh()

	require.Len(t, f.host.tabs.Items, 2)
	assert.True(t, extension.IsPlaceholder(f.host.tabs.Items[1].Content))
}

func TestTabNavigation(t *testing.T) {
	f := newFixture(t,
		extension.Descriptor{ID: "a", Name: "A", TabIcon: "checklist", Factory: extension.Static(newStub("a", ""))},
		extension.Descriptor{ID: "b", Name: "B", TabIcon: "checklist", Factory: extension.Static(newStub("b", ""))},
	)
	f.host.Refresh()

	f.host.NextTab()
	assert.Equal(t, "a", f.host.SelectedTab())
	assert.Equal(t, "a", f.cfg.GetLastTab())

	f.host.NextTab()
	f.host.NextTab()
	assert.Equal(t, extension.HomeTabID, f.host.SelectedTab(), "wraps forward")

	f.host.PrevTab()
	assert.Equal(t, "b", f.host.SelectedTab(), "wraps backward")
}

func TestLastTabRestored(t *testing.T) {
	f := newFixture(t,
		extension.Descriptor{ID: "a", Name: "A", TabIcon: "checklist", Factory: extension.Static(newStub("a", ""))},
		extension.Descriptor{ID: "b", Name: "B", TabIcon: "checklist", Factory: extension.Static(newStub("b", ""))},
	)
	f.cfg.SetLastTab("b")
	f.host.Refresh()
	assert.Equal(t, "b", f.host.SelectedTab())
}

func TestHUD(t *testing.T) {
	f := newFixture(t,
		extension.Descriptor{ID: "hud", Name: "HUD", Factory: extension.Static(newStub("hud", "", extension.SurfaceHUD))},
		extension.Descriptor{ID: "a", Name: "A", TabIcon: "checklist", Factory: extension.Static(newStub("a", "", extension.SurfaceNavigationTab))},
	)

	f.host.Refresh()
	require.Equal(t, 1, f.host.HUDCount())
	assert.Equal(t, "hud:HUD", labelText(f.host.hud.Objects[0]))
	assert.Equal(t, []string{extension.HomeTabID, "a"}, f.host.TabIDs(), "the HUD extension has no tab")

	f.cfg.SetHUDReplacementEnabled(false)
	f.host.Refresh()
	assert.Zero(t, f.host.HUDCount())
}

func TestPanelVisibility(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.host.panelVisible)
	f.host.TogglePanel()
	assert.True(t, f.host.panelVisible)
	f.host.TogglePanel()
	assert.False(t, f.host.panelVisible)
}

func TestPendingText(t *testing.T) {
	assert.Equal(t, "No reminders", pendingText(0))
	assert.Equal(t, "1 reminder open", pendingText(1))
	assert.Equal(t, "3 reminders open", pendingText(3))
}

func TestSetExtensionEnabled(t *testing.T) {
	f := newFixture(t,
		extension.Descriptor{ID: "a", Name: "A", TabIcon: "checklist", Factory: extension.Static(newStub("a", ""))},
	)
	f.host.Refresh()

	f.host.SetExtensionEnabled("a", false)
	assert.False(t, f.cfg.IsExtensionEnabled("a"))
	assert.Equal(t, []string{extension.HomeTabID}, f.host.TabIDs())

	f.host.SetExtensionEnabled("a", true)
	assert.True(t, f.cfg.IsExtensionEnabled("a"))
	assert.Equal(t, []string{extension.HomeTabID, "a"}, f.host.TabIDs())
}

func TestSyncExtensions(t *testing.T) {
	reg := extension.NewRegistry()
	require.NoError(t, reg.Register(extension.Descriptor{ID: "external", Name: "External"}))
	catalog := []extension.Descriptor{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "bad"},
	}

	disabled := map[string]bool{"b": true}
	enabled := func(id string) bool { return !disabled[id] }

	assert.Equal(t, 1, SyncExtensions(reg, catalog, enabled), "invalid descriptors are skipped")
	assert.Equal(t, 2, reg.Len())

	disabled = map[string]bool{"a": true}
	assert.Equal(t, 2, SyncExtensions(reg, catalog, enabled))
	_, ok := reg.Lookup("a")
	assert.False(t, ok)
	_, ok = reg.Lookup("external")
	assert.True(t, ok, "entries outside the catalog are untouched")

	assert.Zero(t, SyncExtensions(reg, catalog, enabled))
	assert.Equal(t, 1, SyncExtensions(reg, catalog, nil), "nil enables everything")
}

func TestHUDStyleDefault(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, config.HUDStyleProgress, f.cfg.GetHUDStyle())
}
