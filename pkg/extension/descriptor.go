package extension

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// HomeTabID is reserved for the built-in home tab.
const HomeTabID = "home"

// ErrInvalidDescriptor is returned when a descriptor cannot be registered.
var ErrInvalidDescriptor = errors.New("invalid extension descriptor")

// idNamespace scopes ids derived from extension names.
var idNamespace = uuid.MustParse("6f1c3b8e-4d2a-5f7e-9a1b-2c3d4e5f6a7b")

// ProviderFactory builds the provider for one extension.
// It returns a nil provider or an error when no content is available; a
// typed nil pointer counts as nil. Panics are not recovered.
type ProviderFactory func() (Provider, error)

// Descriptor is the static identity and metadata of an installed extension.
type Descriptor struct {
	ID       string          // Stable, unique among installed extensions.
	Name     string          // Display name, required.
	TabTitle string          // Optional tab label override.
	TabIcon  string          // Optional symbolic tab icon.
	Factory  ProviderFactory // Nil when the extension renders nothing.
}

// StableID derives an id from an extension name. The same name always yields
// the same id, across processes and machines.
func StableID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

// normalize fills a missing id and checks the descriptor can be installed.
func (d Descriptor) normalize() (Descriptor, error) {
	if d.Name == "" {
		return d, fmt.Errorf("%w: name is required", ErrInvalidDescriptor)
	}
	if d.ID == "" {
		d.ID = StableID(d.Name)
	}
	if d.ID == HomeTabID {
		return d, fmt.Errorf("%w: id %q is reserved", ErrInvalidDescriptor, HomeTabID)
	}
	return d, nil
}
