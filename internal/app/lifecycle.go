package app

type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateExited
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateReleased:
		return "released"
	default:
		return "unknown"
	}
}

func (a *Application) transition(to State) {
	a.logger.Debug("Lifecycle", "state change", map[string]interface{}{
		"from": a.state.String(),
		"to":   to.String(),
	})
	a.state = to
}

// release is registered with the shutdown manager and drops the application's
// references once the event loop is done.
func (a *Application) release() {
	if a.state == StateRunning {
		a.fyneApp.Quit()
	}

	for _, op := range []string{"activate", "icon_load"} {
		if d := a.timing.Last(op); d > 0 {
			a.logger.Debug("Lifecycle", "startup timing", map[string]interface{}{
				"operation":   op,
				"duration_ms": d.Milliseconds(),
				"average_ms":  a.timing.GetAverageTime(op).Milliseconds(),
				"samples":     len(a.timing.GetTimings(op)),
			})
		}
	}

	// fyneApp stays set: the signal watcher may still be queued to call Quit.
	a.mainWindow = nil
	a.transition(StateReleased)
}
