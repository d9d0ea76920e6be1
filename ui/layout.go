package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment places the two halves of a split row.
type Alignment int

const (
	alignLeft Alignment = iota
	alignOpposed
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment // Both widgets packed from the left.
	Opposed Alignment // First widget left, second widget right.
}{
	Left:    alignLeft,
	Opposed: alignOpposed,
}

// FirstWidgetProportion is the share of the row given to the first widget.
type FirstWidgetProportion int

const (
	oneThird FirstWidgetProportion = iota
	twoThirds
)

// SplitProportion is a namespace for the FirstWidgetProportion constants.
var SplitProportion = struct {
	OneThird  FirstWidgetProportion // 1/3 - 2/3
	TwoThirds FirstWidgetProportion // 2/3 - 1/3
}{
	OneThird:  oneThird,
	TwoThirds: twoThirds,
}

type splitLayout struct {
	first, second fyne.CanvasObject
	proportion    FirstWidgetProportion
	alignment     Alignment
}

func (s *splitLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	a, b := s.first.MinSize(), s.second.MinSize()
	return fyne.NewSize(a.Width+b.Width, fyne.Max(a.Height, b.Height))
}

func (s *splitLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	firstWidth := size.Width / 3
	if s.proportion == twoThirds {
		firstWidth = size.Width * 2 / 3
	}
	secondWidth := size.Width - firstWidth
	secondX := firstWidth
	if s.alignment == alignOpposed {
		secondWidth = fyne.Min(secondWidth, s.second.MinSize().Width)
		secondX = size.Width - secondWidth
	}

	s.first.Resize(fyne.NewSize(firstWidth, s.first.MinSize().Height))
	s.first.Move(fyne.NewPos(0, 0))
	s.second.Resize(fyne.NewSize(secondWidth, s.second.MinSize().Height))
	s.second.Move(fyne.NewPos(secondX, 0))
}

// NewSplitRowWithAlignment creates a two column row.
func NewSplitRowWithAlignment(first, second fyne.CanvasObject, proportion FirstWidgetProportion, alignment Alignment) *fyne.Container {
	return container.New(&splitLayout{first: first, second: second, proportion: proportion, alignment: alignment}, first, second)
}

// NewSplitRow creates a left aligned two column row.
func NewSplitRow(first, second fyne.CanvasObject, proportion FirstWidgetProportion) *fyne.Container {
	return NewSplitRowWithAlignment(first, second, proportion, alignLeft)
}
