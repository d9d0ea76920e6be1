package ui

import (
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// SyncExtensions makes the registry hold exactly the catalog entries that
// enabled accepts. Newly enabled extensions are appended; entries registered
// outside the catalog are left alone. It returns the number of changes.
func SyncExtensions(reg *extension.Registry, catalog []extension.Descriptor, enabled func(id string) bool) int {
	changes := 0
	for _, d := range catalog {
		_, installed := reg.Lookup(d.ID)
		want := enabled == nil || enabled(d.ID)
		switch {
		case want && !installed:
			if err := reg.Register(d); err != nil {
				log.Printf("Failed to register extension %s: %v", d.Name, err)
				continue
			}
			changes++
		case !want && installed:
			reg.Unregister(d.ID)
			changes++
		}
	}
	return changes
}
