package extension

import (
	"errors"

	"fyne.io/fyne/v2/widget"
)

// fakeProvider records calls and serves canned content per surface kind.
type fakeProvider struct {
	Base
	content map[SurfaceKind]Content
	views   int
	lastCtx Context
}

func (p *fakeProvider) View(kind SurfaceKind, ctx Context) Content {
	p.views++
	p.lastCtx = ctx
	return p.content[kind]
}

// countingFactory returns a factory building p and a pointer to its call count.
func countingFactory(p Provider) (ProviderFactory, *int) {
	calls := 0
	return func() (Provider, error) {
		calls++
		return p, nil
	}, &calls
}

var errBoom = errors.New("boom")

func failingFactory() (Provider, error) {
	return nil, errBoom
}

func nilFactory() (Provider, error) {
	return nil, nil
}

func newContent(text string) Content {
	return widget.NewLabel(text)
}
