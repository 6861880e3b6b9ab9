package app

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"hello-world/internal/config"
	"hello-world/internal/gui"
	"hello-world/internal/icon"
	"hello-world/internal/logger"
	"hello-world/internal/shutdown"
	"hello-world/internal/timing"
)

// Application is the explicitly constructed replacement for a process-wide
// toolkit application object. Close must be called once Run returns.
type Application struct {
	fyneApp    fyne.App
	cfg        *config.Config
	logger     logger.Logger
	loader     gui.IconLoader
	timing     *timing.Tracker
	shutdown   *shutdown.Manager
	mainWindow *gui.MainWindow
	args       []string
	state      State
}

func New(cfg *config.Config, log logger.Logger) *Application {
	return NewWithFyneApp(fyneapp.NewWithID(cfg.AppID), cfg, log)
}

// NewWithFyneApp wraps an existing fyne.App, such as the one from fyne's test package.
func NewWithFyneApp(fyneApp fyne.App, cfg *config.Config, log logger.Logger) *Application {
	tracker := timing.NewTracker()
	// Durations are only reported at debug level.
	tracker.SetEnabled(strings.EqualFold(cfg.Logging.Level, "debug"))

	a := &Application{
		fyneApp:  fyneApp,
		cfg:      cfg,
		logger:   log,
		loader:   icon.NewLoader(log, tracker),
		timing:   tracker,
		shutdown: shutdown.NewManager(log),
		state:    StateNotStarted,
	}
	a.shutdown.Register("application", shutdown.Func(a.release))

	return a
}

// Activate builds and shows the main window.
func (a *Application) Activate() *gui.MainWindow {
	ctx := a.timing.StartTiming("activate")
	a.mainWindow = gui.BuildMainWindow(a.fyneApp, a.cfg.Window, a.cfg.Icon.Path, a.loader, a.logger)
	a.mainWindow.Window.SetMaster()
	a.timing.EndTiming(ctx)

	return a.mainWindow
}

// Run activates the application and blocks in the event loop until the main
// window is closed. The returned value is the process exit status.
func (a *Application) Run(args []string) int {
	a.args = args
	a.logger.Info("Application", "starting application", map[string]interface{}{
		"app_id": a.cfg.AppID,
		"args":   args,
	})

	a.shutdown.Listen(func(os.Signal) {
		fyne.Do(a.Quit)
	})

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.logger.Debug("Application", "event loop started", nil)
	})

	a.transition(StateRunning)
	a.Activate()
	a.fyneApp.Run()
	a.transition(StateExited)

	a.logger.Info("Application", "event loop exited", map[string]interface{}{
		"toggles": a.toggles(),
	})
	return 0
}

// Quit asks the event loop to stop. It must be called on the UI thread.
// fyneApp is never cleared, so Quit is safe even after Close.
func (a *Application) Quit() {
	a.fyneApp.Quit()
}

// Close releases the application. It is safe to call more than once.
func (a *Application) Close() {
	a.shutdown.Shutdown()
}

func (a *Application) MainWindow() *gui.MainWindow {
	return a.mainWindow
}

func (a *Application) State() State {
	return a.state
}

func (a *Application) Args() []string {
	return a.args
}

func (a *Application) toggles() int {
	if a.mainWindow == nil {
		return 0
	}
	return a.mainWindow.Toggle.Toggles()
}
