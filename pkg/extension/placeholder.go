package extension

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// UnavailableText is the message shown by the placeholder.
const UnavailableText = "Extension not available"

// Placeholder is the fixed content returned when resolution cannot produce
// real content. It does not depend on the extension or the context.
type Placeholder struct {
	widget.BaseWidget
}

// NewPlaceholder creates a new placeholder widget.
func NewPlaceholder() *Placeholder {
	p := &Placeholder{}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget.
func (p *Placeholder) CreateRenderer() fyne.WidgetRenderer {
	label := widget.NewLabelWithStyle(UnavailableText, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	label.Importance = widget.LowImportance
	return widget.NewSimpleRenderer(label)
}

// IsPlaceholder reports whether c is the unavailable placeholder.
func IsPlaceholder(c Content) bool {
	_, ok := c.(*Placeholder)
	return ok
}
