package gui

import (
	"fyne.io/fyne/v2"

	"hello-world/internal/logger"
)

// GreetingToggle flips the visibility of the label it was bound to.
// Visibility is always read back from the widget.
type GreetingToggle struct {
	label   fyne.CanvasObject
	logger  logger.Logger
	toggles int
}

func NewGreetingToggle(label fyne.CanvasObject, log logger.Logger) *GreetingToggle {
	return &GreetingToggle{label: label, logger: log}
}

func (t *GreetingToggle) Toggle() {
	if t.label.Visible() {
		t.label.Hide()
	} else {
		t.label.Show()
	}
	t.toggles++

	t.logger.Debug("GreetingToggle", "greeting toggled", map[string]interface{}{
		"visible": t.label.Visible(),
		"toggles": t.toggles,
	})
}

// Toggles reports how many activations have been handled.
func (t *GreetingToggle) Toggles() int {
	return t.toggles
}
