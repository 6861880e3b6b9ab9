// Package gui builds the hello-world main window.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"hello-world/internal/config"
	"hello-world/internal/gui/layout"
	"hello-world/internal/icon"
	"hello-world/internal/logger"
)

type IconLoader interface {
	Load(path string) (*icon.Icon, error)
}

// MainWindow keeps handles to the widgets the window builder created.
type MainWindow struct {
	Window      fyne.Window
	Box         *fyne.Container
	Button      *widget.Button
	Greeting    *widget.RichText
	Toggle      *GreetingToggle
	BorderWidth float32
	Spacing     float32
	HasIcon     bool
}

// BuildMainWindow creates and shows the main window. A missing or broken icon
// is logged and otherwise ignored.
func BuildMainWindow(fyneApp fyne.App, cfg config.Window, iconPath string, loader IconLoader, log logger.Logger) *MainWindow {
	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	window.SetPadded(false)

	mw := &MainWindow{
		Window:      window,
		BorderWidth: cfg.BorderWidth,
		Spacing:     cfg.Spacing,
	}

	mw.HasIcon = attachIcon(window, iconPath, loader, log)

	mw.Greeting = newGreeting(cfg.Greeting)
	mw.Greeting.Hide()

	mw.Toggle = NewGreetingToggle(mw.Greeting, log)
	mw.Button = widget.NewButton(cfg.Button, mw.Toggle.Toggle)

	mw.Box = container.New(layout.NewSpacedVBox(cfg.Spacing), mw.Button, mw.Greeting)
	window.SetContent(container.New(layout.NewBorder(cfg.BorderWidth), mw.Box))

	window.Show()

	log.Info("MainWindow", "window shown", map[string]interface{}{
		"title":    cfg.Title,
		"width":    cfg.Width,
		"height":   cfg.Height,
		"has_icon": mw.HasIcon,
	})

	return mw
}

func attachIcon(window fyne.Window, path string, loader IconLoader, log logger.Logger) bool {
	ic, err := loader.Load(path)
	if err != nil {
		log.Warning("MainWindow", "could not load icon: "+err.Error(), map[string]interface{}{
			"path": path,
		})
		return false
	}

	window.SetIcon(ic.Resource())
	if err := ic.Close(); err != nil {
		log.Error("MainWindow", err, map[string]interface{}{"path": path})
	}
	return true
}

func newGreeting(text string) *widget.RichText {
	return widget.NewRichText(&widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			Alignment: fyne.TextAlignCenter,
			SizeName:  theme.SizeNameHeadingText,
			TextStyle: fyne.TextStyle{Bold: true},
		},
	})
}
