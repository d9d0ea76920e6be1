package extension

import "github.com/TheBoredTeam/boring.notch-sub003/util/log"

// Outcome explains how a resolution ended.
type Outcome int

const (
	// Resolved means the provider returned content.
	Resolved Outcome = iota
	// NotInstalled means no extension is registered under the id.
	NotInstalled
	// NoProvider means the extension has no factory or its factory failed.
	NoProvider
	// Declined means the provider returned nothing for the surface kind.
	Declined
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NotInstalled:
		return "not installed"
	case NoProvider:
		return "no provider"
	case Declined:
		return "declined"
	default:
		return "unknown"
	}
}

// Resolver turns surface requests into content using a registry.
type Resolver struct {
	registry    *Registry
	placeholder func() Content
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithPlaceholder replaces the default placeholder constructor. The function
// must return the same kind of content on every call.
func WithPlaceholder(fn func() Content) ResolverOption {
	return func(r *Resolver) {
		r.placeholder = fn
	}
}

// NewResolver creates a resolver backed by reg.
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry:    reg,
		placeholder: func() Content { return NewPlaceholder() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the content extension id renders for kind, or the
// placeholder. It never fails.
func (r *Resolver) Resolve(id string, kind SurfaceKind, ctx Context) Content {
	c, _ := r.Explain(id, kind, ctx)
	return c
}

// ResolveTab resolves the content a tab targets. The home target has no
// extension behind it and yields the placeholder; hosts render home
// themselves.
func (r *Resolver) ResolveTab(t Tab, ctx Context) Content {
	return r.Resolve(t.Target.ExtensionID, t.Target.Surface, ctx)
}

// Explain is Resolve plus the reason for the result. Callers use the outcome
// for diagnostics only; the content is identical to Resolve.
func (r *Resolver) Explain(id string, kind SurfaceKind, ctx Context) (Content, Outcome) {
	e, ok := r.registry.entries[id]
	if !ok {
		return r.fallback(id, kind, NotInstalled)
	}

	p := r.registry.acquire(e)
	if p == nil {
		return r.fallback(id, kind, NoProvider)
	}

	c := p.View(kind, ctx)
	if c == nil {
		return r.fallback(id, kind, Declined)
	}
	return c, Resolved
}

func (r *Resolver) fallback(id string, kind SurfaceKind, o Outcome) (Content, Outcome) {
	log.Debugf("[Extension] %s/%s unavailable: %s", id, kind, o)
	return r.placeholder(), o
}
