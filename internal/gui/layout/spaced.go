package layout

import (
	"fyne.io/fyne/v2"
)

// SpacedVBoxLayout stacks visible children vertically with a fixed gap.
// Space beyond the children's minimum heights is shared equally, so every
// child expands to fill. Hidden children take no space and no gap.
type SpacedVBoxLayout struct {
	spacing float32
}

func NewSpacedVBox(spacing float32) *SpacedVBoxLayout {
	return &SpacedVBoxLayout{spacing: spacing}
}

func (l *SpacedVBoxLayout) Spacing() float32 {
	return l.spacing
}

func (l *SpacedVBoxLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return
	}

	totalMin := float32(0)
	for _, obj := range visible {
		totalMin += obj.MinSize().Height
	}

	extra := containerSize.Height - totalMin - l.spacing*float32(len(visible)-1)
	if extra < 0 {
		extra = 0
	}
	share := extra / float32(len(visible))

	y := float32(0)
	for _, obj := range visible {
		height := obj.MinSize().Height + share
		obj.Resize(fyne.NewSize(containerSize.Width, height))
		obj.Move(fyne.NewPos(0, y))
		y += height + l.spacing
	}
}

func (l *SpacedVBoxLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	maxWidth := float32(0)
	totalHeight := l.spacing * float32(len(visible)-1)
	for _, obj := range visible {
		objMin := obj.MinSize()
		if objMin.Width > maxWidth {
			maxWidth = objMin.Width
		}
		totalHeight += objMin.Height
	}

	return fyne.NewSize(maxWidth, totalHeight)
}

// BorderLayout insets every child by a fixed margin on all four sides.
type BorderLayout struct {
	width float32
}

func NewBorder(width float32) *BorderLayout {
	return &BorderLayout{width: width}
}

func (l *BorderLayout) Width() float32 {
	return l.width
}

func (l *BorderLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	inner := fyne.NewSize(containerSize.Width-2*l.width, containerSize.Height-2*l.width)
	for _, obj := range objects {
		obj.Resize(inner)
		obj.Move(fyne.NewPos(l.width, l.width))
	}
}

func (l *BorderLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	inner := fyne.NewSize(0, 0)
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		inner = inner.Max(obj.MinSize())
	}
	return inner.Add(fyne.NewSize(2*l.width, 2*l.width))
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Visible() {
			visible = append(visible, obj)
		}
	}
	return visible
}
