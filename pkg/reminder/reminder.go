// Package reminder keeps the user's reminder list and persists it in the
// application preferences.
package reminder

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

// PrefKey is the preferences key holding the JSON encoded list.
const PrefKey = "reminders"

// Item is a single reminder.
type Item struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Due   time.Time `json:"due,omitempty"`
	Done  bool      `json:"done"`
}

// Overdue reports whether the item is still open past its due time.
func (i Item) Overdue(now time.Time) bool {
	return !i.Done && !i.Due.IsZero() && i.Due.Before(now)
}

// Lister is the read-only view handed to extensions.
type Lister interface {
	Items() []Item
}

// Store is the mutable reminder list. It is driven from the UI goroutine.
type Store struct {
	prefs fyne.Preferences
	items []Item
}

// NewStore loads the list saved in prefs.
func NewStore(prefs fyne.Preferences) *Store {
	s := &Store{prefs: prefs}
	raw := prefs.StringWithFallback(PrefKey, "")
	if raw == "" {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
		log.Printf("Error parsing saved reminders, starting empty: %v", err)
		s.items = nil
	}
	return s
}

// Add appends a new open reminder and saves the list. Blank titles are ignored.
func (s *Store) Add(title string, due time.Time) (Item, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, false
	}
	item := Item{ID: uuid.NewString(), Title: title, Due: due}
	s.items = append(s.items, item)
	s.save()
	return item, true
}

// Toggle flips the done flag of id and returns the new value.
func (s *Store) Toggle(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			s.save()
			return s.items[i].Done
		}
	}
	return false
}

// Remove deletes id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.save()
			return
		}
	}
}

// Items returns a copy of the list: open items first, then by due time
// (undated last), then by title.
func (s *Store) Items() []Item {
	out := append([]Item(nil), s.items...)
	sort.SliceStable(out, func(a, b int) bool {
		x, y := out[a], out[b]
		if x.Done != y.Done {
			return !x.Done
		}
		if x.Due.IsZero() != y.Due.IsZero() {
			return !x.Due.IsZero()
		}
		if !x.Due.Equal(y.Due) {
			return x.Due.Before(y.Due)
		}
		return x.Title < y.Title
	})
	return out
}

// Pending returns the number of open reminders.
func (s *Store) Pending() int {
	n := 0
	for _, it := range s.items {
		if !it.Done {
			n++
		}
	}
	return n
}

func (s *Store) save() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("Error saving reminders: %v", err)
		return
	}
	s.prefs.SetString(PrefKey, string(data))
}
