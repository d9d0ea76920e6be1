package extension

import (
	"reflect"
	"slices"

	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// entry is one installed descriptor plus its cached provider.
type entry struct {
	desc     Descriptor
	provider Provider
}

// Registry is the ordered, id-unique set of installed extensions.
//
// Providers are created lazily on first need and cached per extension id
// until the descriptor is replaced, unregistered or evicted. A factory that
// fails is not cached and is retried on the next acquisition.
//
// The registry is not safe for concurrent use; the host drives it from the
// UI goroutine only.
type Registry struct {
	order      []string
	entries    map[string]*entry
	generation uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register installs d. A new id is appended to the end of the order; an
// existing id is updated in place and keeps its position. The only error is
// ErrInvalidDescriptor.
func (r *Registry) Register(d Descriptor) error {
	d, err := d.normalize()
	if err != nil {
		return err
	}

	r.generation++
	if e, ok := r.entries[d.ID]; ok {
		log.Debugf("[Extension] Replacing %s (%s) in place", d.ID, d.Name)
		e.desc = d
		e.provider = nil
		return nil
	}

	log.Debugf("[Extension] Registering %s (%s)", d.ID, d.Name)
	r.entries[d.ID] = &entry{desc: d}
	r.order = append(r.order, d.ID)
	return nil
}

// Unregister removes the extension with the given id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	r.generation++
	log.Debugf("[Extension] Unregistered %s", id)
}

// Lookup returns the descriptor installed under id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	e, ok := r.entries[id]
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

// Len returns the number of installed extensions.
func (r *Registry) Len() int {
	return len(r.order)
}

// Descriptors returns all installed descriptors in registry order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].desc)
	}
	return out
}

// Generation changes every time the installed set or any descriptor changes.
// Hosts compare it between refreshes to know when to rebuild derived models.
func (r *Registry) Generation() uint64 {
	return r.generation
}

// Provider returns the cached provider for id, creating it if needed.
// It reports false when the extension is unknown, has no factory, or its
// factory failed.
func (r *Registry) Provider(id string) (Provider, bool) {
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	p := r.acquire(e)
	return p, p != nil
}

// Evict drops the cached provider for id so the next acquisition rebuilds it.
func (r *Registry) Evict(id string) {
	if e, ok := r.entries[id]; ok {
		e.provider = nil
	}
}

// acquire returns the entry's provider, running the factory on a cache miss.
func (r *Registry) acquire(e *entry) Provider {
	if e.provider != nil {
		return e.provider
	}
	if e.desc.Factory == nil {
		return nil
	}

	p, err := e.desc.Factory()
	if err != nil {
		log.Printf("[Extension] Provider for %s failed to start: %v", e.desc.ID, err)
		return nil
	}
	if isNil(p) {
		log.Debugf("[Extension] Factory for %s returned no provider", e.desc.ID)
		return nil
	}
	e.provider = p
	return p
}

// isNil also catches typed nils such as (*T)(nil) wrapped in the interface.
func isNil(p Provider) bool {
	if p == nil {
		return true
	}
	switch v := reflect.ValueOf(p); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
