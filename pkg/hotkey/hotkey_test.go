package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindings(t *testing.T) {
	t.Run("All actions", func(t *testing.T) {
		calls := map[string]int{}
		bs := Bindings(Actions{
			NextTab:     func() { calls["next"]++ },
			PrevTab:     func() { calls["prev"]++ },
			TogglePanel: func() { calls["toggle"]++ },
		})
		assert.Len(t, bs, 3)
		for _, b := range bs {
			assert.Len(t, b.Mods, 2)
			b.Action()
		}
		assert.Equal(t, map[string]int{"next": 1, "prev": 1, "toggle": 1}, calls)
	})

	t.Run("Nil actions skipped", func(t *testing.T) {
		bs := Bindings(Actions{TogglePanel: func() {}})
		assert.Len(t, bs, 1)
		assert.Equal(t, "Toggle Panel", bs[0].Name)
	})
}
