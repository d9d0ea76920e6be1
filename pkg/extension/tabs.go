package extension

// Home tab defaults.
const (
	HomeTabTitle = "Home"
	HomeTabIcon  = "house.fill"
)

// Target is the surface a tab opens.
type Target struct {
	ExtensionID string // Empty for the home tab.
	Surface     SurfaceKind
}

// IsHome reports whether the target is the host-rendered home view.
func (t Target) IsHome() bool {
	return t.ExtensionID == ""
}

// Tab is one entry of the derived navigation model.
type Tab struct {
	ID     string
	Title  string
	Icon   string
	Target Target
}

// HomeTab returns the fixed built-in first tab.
func HomeTab() Tab {
	return Tab{
		ID:     HomeTabID,
		Title:  HomeTabTitle,
		Icon:   HomeTabIcon,
		Target: Target{Surface: SurfaceNavigationTab},
	}
}

// TabExtensions returns, in registry order, the extensions that have an
// effective tab icon. Extensions without a descriptor icon get their provider
// instantiated to read its default.
func (r *Registry) TabExtensions() []Descriptor {
	var out []Descriptor
	for _, id := range r.order {
		e := r.entries[id]
		if _, ok := r.tabIcon(e); ok {
			out = append(out, e.desc)
		}
	}
	return out
}

// Tabs derives the navigation model: the home tab followed by one tab per
// tab extension. It is recomputed on every call.
func (r *Registry) Tabs() []Tab {
	tabs := []Tab{HomeTab()}
	for _, id := range r.order {
		e := r.entries[id]
		icon, ok := r.tabIcon(e)
		if !ok {
			continue
		}
		tabs = append(tabs, Tab{
			ID:     e.desc.ID,
			Title:  r.tabTitle(e),
			Icon:   icon,
			Target: Target{ExtensionID: e.desc.ID, Surface: SurfaceNavigationTab},
		})
	}
	return tabs
}

// TabTitle returns the effective tab label for id.
func (r *Registry) TabTitle(id string) (string, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return r.tabTitle(e), true
}

// TabIcon returns the effective tab icon for id. It reports false when
// neither the descriptor nor the provider names one.
func (r *Registry) TabIcon(id string) (string, bool) {
	e, ok := r.entries[id]
	if !ok {
		return "", false
	}
	return r.tabIcon(e)
}

// tabIcon applies descriptor, then provider precedence.
func (r *Registry) tabIcon(e *entry) (string, bool) {
	if e.desc.TabIcon != "" {
		return e.desc.TabIcon, true
	}
	if p := r.acquire(e); p != nil {
		if icon := p.TabIcon(); icon != "" {
			return icon, true
		}
	}
	return "", false
}

// tabTitle applies descriptor, then provider, then name precedence.
func (r *Registry) tabTitle(e *entry) string {
	if e.desc.TabTitle != "" {
		return e.desc.TabTitle
	}
	if p := r.acquire(e); p != nil {
		if title := p.TabTitle(); title != "" {
			return title
		}
	}
	return e.desc.Name
}
