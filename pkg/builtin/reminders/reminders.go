// Package reminders is the built-in reminder list extension.
package reminders

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/TheBoredTeam/boring.notch-sub003/pkg/extension"
	"github.com/TheBoredTeam/boring.notch-sub003/pkg/reminder"
)

// ID is the extension id.
const ID = "reminders"

// Icon is the descriptor tab icon.
const Icon = "checklist"

// Title is the provider-level tab title.
const Title = "Reminders"

const (
	emptyText  = "Nothing to do"
	dueLayout  = "Jan 2 15:04"
	overdueTag = " (overdue)"
)

// Descriptor returns the reminders extension descriptor. The provider keeps
// a handle on store; onChange is called after the list is edited so the
// host can re-resolve its surfaces. onChange may be nil.
func Descriptor(store *reminder.Store, onChange func()) extension.Descriptor {
	return extension.Descriptor{
		ID:      ID,
		Name:    "Reminder List",
		TabIcon: Icon,
		Factory: func() (extension.Provider, error) {
			if store == nil {
				return nil, fmt.Errorf("reminders: no store")
			}
			return NewProvider(store, onChange), nil
		},
	}
}

// Provider renders the reminder list and its editor.
type Provider struct {
	extension.Base
	store    *reminder.Store
	onChange func()
}

// NewProvider creates a provider editing store.
func NewProvider(store *reminder.Store, onChange func()) *Provider {
	return &Provider{
		Base:     extension.Base{Title: Title},
		store:    store,
		onChange: onChange,
	}
}

// View renders the list for the navigation tab and the editor for settings.
func (p *Provider) View(kind extension.SurfaceKind, ctx extension.Context) extension.Content {
	switch kind {
	case extension.SurfaceNavigationTab:
		return p.listView(ctx)
	case extension.SurfaceSettings:
		return newAddForm(p.store, ctx.Now, p.changed).content()
	default:
		return nil
	}
}

func (p *Provider) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}

func (p *Provider) listView(ctx extension.Context) fyne.CanvasObject {
	var items []reminder.Item
	if ctx.Reminders != nil {
		items = ctx.Reminders.Items()
	}
	if len(items) == 0 {
		empty := widget.NewLabel(emptyText)
		empty.Alignment = fyne.TextAlignCenter
		empty.Importance = widget.LowImportance
		return empty
	}

	rows := container.NewVBox()
	for _, item := range items {
		id := item.ID
		check := widget.NewCheck(itemLabel(item, ctx.Now), nil)
		check.Checked = item.Done
		check.OnChanged = func(bool) {
			p.store.Toggle(id)
			p.changed()
		}
		rows.Add(check)
	}
	return container.NewVScroll(rows)
}

// itemLabel formats one row: title, due time and an overdue marker.
func itemLabel(item reminder.Item, now time.Time) string {
	var b strings.Builder
	b.WriteString(item.Title)
	if !item.Due.IsZero() {
		b.WriteString(" · ")
		b.WriteString(item.Due.Format(dueLayout))
	}
	if !now.IsZero() && item.Overdue(now) {
		b.WriteString(overdueTag)
	}
	return b.String()
}

// addForm adds reminders to the store.
type addForm struct {
	store    *reminder.Store
	now      time.Time
	onAdded  func()
	title    *widget.Entry
	dueIn    *widget.Entry
	status   *widget.Label
	addBtn   *widget.Button
	clearBtn *widget.Button
}

func newAddForm(store *reminder.Store, now time.Time, onAdded func()) *addForm {
	f := &addForm{store: store, now: now, onAdded: onAdded}
	if f.now.IsZero() {
		f.now = time.Now()
	}

	f.title = widget.NewEntry()
	f.title.SetPlaceHolder("Reminder")
	f.dueIn = widget.NewEntry()
	f.dueIn.SetPlaceHolder("Due in (e.g. 30m, 2h), optional")
	f.status = widget.NewLabel("")
	f.addBtn = widget.NewButton("Add", f.submit)
	f.clearBtn = widget.NewButton("Clear Completed", f.clearDone)
	return f
}

func (f *addForm) content() fyne.CanvasObject {
	return container.NewVBox(
		f.title,
		f.dueIn,
		container.NewHBox(f.addBtn, f.clearBtn),
		f.status,
	)
}

func (f *addForm) submit() {
	var due time.Time
	if raw := strings.TrimSpace(f.dueIn.Text); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			f.setStatus(fmt.Sprintf("Invalid due time %q", raw), widget.DangerImportance)
			return
		}
		due = f.now.Add(d)
	}

	item, ok := f.store.Add(f.title.Text, due)
	if !ok {
		f.setStatus("Enter a reminder first", widget.WarningImportance)
		return
	}
	f.title.SetText("")
	f.dueIn.SetText("")
	f.setStatus(fmt.Sprintf("Added %q", item.Title), widget.SuccessImportance)
	if f.onAdded != nil {
		f.onAdded()
	}
}

func (f *addForm) clearDone() {
	removed := 0
	for _, item := range f.store.Items() {
		if item.Done {
			f.store.Remove(item.ID)
			removed++
		}
	}
	f.setStatus(fmt.Sprintf("Removed %d completed", removed), widget.MediumImportance)
	if removed > 0 && f.onAdded != nil {
		f.onAdded()
	}
}

func (f *addForm) setStatus(text string, importance widget.Importance) {
	f.status.Importance = importance
	f.status.SetText(text)
}
