package ui

import (
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/status"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

const homeClockLayout = "Mon Jan 2  15:04"

func (na *NotchApp) buildPanel() {
	na.panel = na.app.NewWindow(config.AppName)
	na.panel.SetPadded(false)
	na.panel.Resize(panelSize)
	na.panel.SetCloseIntercept(na.HidePanel)

	na.tabs = container.NewAppTabs()
	na.tabs.SetTabLocation(container.TabLocationTop)
	na.tabs.OnSelected = func(*container.TabItem) {
		if id := na.SelectedTab(); id != "" {
			na.cfg.SetLastTab(id)
		}
	}
	na.hud = container.NewVBox()
	na.panel.SetContent(container.NewBorder(na.hud, nil, nil, nil, na.tabs))
}

// ShowPanel shows and focuses the notch panel.
func (na *NotchApp) ShowPanel() {
	na.Refresh()
	na.panel.Show()
	na.panel.RequestFocus()
	na.panelVisible = true
}

// HidePanel hides the notch panel.
func (na *NotchApp) HidePanel() {
	na.panel.Hide()
	na.panelVisible = false
}

// TogglePanel flips the panel visibility.
func (na *NotchApp) TogglePanel() {
	if na.panelVisible {
		na.HidePanel()
		return
	}
	na.ShowPanel()
}

// Refresh starts a new render pass: one Context is assembled, the tab model
// is pulled from the registry and every tab and HUD surface is resolved
// against it. The tab strip is rebuilt only when the tab model changed.
func (na *NotchApp) Refresh() {
	ctx := na.assembler.Assemble()
	tabs := na.registry.Tabs()
	if !na.built || !slices.Equal(tabs, na.builtTabs) {
		na.rebuildTabs(tabs, ctx)
	} else {
		for i, item := range na.tabs.Items {
			item.Content = na.tabContent(na.builtTabs[i], ctx)
		}
		na.tabs.Refresh()
	}
	na.refreshHUD(ctx)
}

func (na *NotchApp) rebuildTabs(tabs []extension.Tab, ctx extension.Context) {
	selected := na.SelectedTab()
	if selected == "" {
		selected = na.cfg.GetLastTab()
	}

	na.builtTabs = tabs
	items := make([]*container.TabItem, 0, len(tabs))
	for _, tab := range tabs {
		items = append(items, container.NewTabItemWithIcon(tab.Title, na.assets.GetIcon(tab.Icon), na.tabContent(tab, ctx)))
	}

	onSelected := na.tabs.OnSelected
	na.tabs.OnSelected = nil
	na.tabs.SetItems(items)
	idx := slices.IndexFunc(tabs, func(t extension.Tab) bool { return t.ID == selected })
	if idx < 0 {
		idx = 0
	}
	na.tabs.SelectIndex(idx)
	na.tabs.OnSelected = onSelected

	na.built = true
	log.Debugf("Rebuilt %d tabs at generation %d", len(items), na.registry.Generation())
}

func (na *NotchApp) tabContent(tab extension.Tab, ctx extension.Context) fyne.CanvasObject {
	if tab.Target.IsHome() {
		return homeView(ctx)
	}
	return na.resolver.ResolveTab(tab, ctx)
}

// refreshHUD collects the HUD surface of every installed extension that
// renders one. Extensions without a HUD are skipped silently.
func (na *NotchApp) refreshHUD(ctx extension.Context) {
	na.hud.RemoveAll()
	if !na.cfg.GetHUDReplacementEnabled() {
		na.hud.Refresh()
		return
	}
	for _, d := range na.registry.Descriptors() {
		content, outcome := na.resolver.Explain(d.ID, extension.SurfaceHUD, ctx)
		if outcome != extension.Resolved {
			continue
		}
		na.hud.Add(content)
	}
	na.hud.Refresh()
}

// HUDCount returns the number of HUD surfaces shown.
func (na *NotchApp) HUDCount() int {
	return len(na.hud.Objects)
}

// SelectedTab returns the id of the selected tab, or "" before the first pass.
func (na *NotchApp) SelectedTab() string {
	idx := na.tabs.SelectedIndex()
	if idx < 0 || idx >= len(na.builtTabs) {
		return ""
	}
	return na.builtTabs[idx].ID
}

// TabIDs returns the ids of the built tabs in display order.
func (na *NotchApp) TabIDs() []string {
	ids := make([]string, len(na.builtTabs))
	for i, t := range na.builtTabs {
		ids[i] = t.ID
	}
	return ids
}

// NextTab selects the following tab, wrapping around.
func (na *NotchApp) NextTab() {
	na.stepTab(1)
}

// PrevTab selects the preceding tab, wrapping around.
func (na *NotchApp) PrevTab() {
	na.stepTab(-1)
}

func (na *NotchApp) stepTab(delta int) {
	n := len(na.tabs.Items)
	if n == 0 {
		return
	}
	idx := (na.tabs.SelectedIndex() + delta + n) % n
	na.tabs.SelectIndex(idx)
}

func (na *NotchApp) contentGeometry() extension.Geometry {
	if na.tabs == nil {
		return extension.Geometry{}
	}
	size := na.tabs.Size()
	bar := theme.IconInlineSize() + 4*theme.Padding()
	if size.Height <= bar {
		return extension.Geometry{}
	}
	return extension.Geometry{Width: size.Width, Height: size.Height - bar}
}

// homeView is the host-rendered home tab.
func homeView(ctx extension.Context) fyne.CanvasObject {
	clock := widget.NewLabelWithStyle(ctx.Now.Format(homeClockLayout), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	clock.SizeName = theme.SizeNameHeadingText

	volume := fmt.Sprintf("Volume %d%%", status.Percent(ctx.Status.Volume))
	if ctx.Status.Muted {
		volume = "Muted"
	}
	levels := widget.NewLabelWithStyle(
		fmt.Sprintf("%s  ·  Brightness %d%%", volume, status.Percent(ctx.Status.Brightness)),
		fyne.TextAlignCenter, fyne.TextStyle{})

	rows := []fyne.CanvasObject{clock, levels}
	if ctx.Reminders != nil {
		open := 0
		for _, item := range ctx.Reminders.Items() {
			if !item.Done {
				open++
			}
		}
		pending := widget.NewLabelWithStyle(pendingText(open), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		pending.Importance = widget.LowImportance
		rows = append(rows, pending)
	}
	return container.NewCenter(container.NewVBox(rows...))
}

func pendingText(n int) string {
	switch n {
	case 0:
		return "No reminders"
	case 1:
		return "1 reminder open"
	default:
		return fmt.Sprintf("%d reminders open", n)
	}
}
