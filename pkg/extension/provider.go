package extension

// Provider answers capability queries for one extension.
//
// View is the single negotiation call: it returns the content for the given
// surface kind, or nil when the extension does not render that surface.
// TabTitle and TabIcon return provider-level defaults, or "" when absent.
type Provider interface {
	TabTitle() string
	TabIcon() string
	View(kind SurfaceKind, ctx Context) Content
}

// Base carries provider-level tab defaults. Embed it in a provider to get
// TabTitle and TabIcon.
type Base struct {
	Title string
	Icon  string
}

// TabTitle returns the provider default tab title.
func (b Base) TabTitle() string { return b.Title }

// TabIcon returns the provider default tab icon.
func (b Base) TabIcon() string { return b.Icon }

// ViewFunc adapts a plain function into a Provider without tab defaults.
type ViewFunc func(kind SurfaceKind, ctx Context) Content

// TabTitle returns "".
func (f ViewFunc) TabTitle() string { return "" }

// TabIcon returns "".
func (f ViewFunc) TabIcon() string { return "" }

// View calls f.
func (f ViewFunc) View(kind SurfaceKind, ctx Context) Content { return f(kind, ctx) }

// Static returns a factory that always yields p.
func Static(p Provider) ProviderFactory {
	return func() (Provider, error) { return p, nil }
}
