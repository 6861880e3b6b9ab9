package logger

import (
	"sync"

	"github.com/rs/zerolog"
)

// Entry is one record captured by a Recorder.
type Entry struct {
	Level     zerolog.Level
	Component string
	Message   string
	Fields    map[string]interface{}
	Err       error
}

// Recorder keeps every record in memory. Tests use it to assert on warnings.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(component, message string, fields map[string]interface{}) {
	r.add(Entry{Level: zerolog.DebugLevel, Component: component, Message: message, Fields: fields})
}

func (r *Recorder) Info(component, message string, fields map[string]interface{}) {
	r.add(Entry{Level: zerolog.InfoLevel, Component: component, Message: message, Fields: fields})
}

func (r *Recorder) Warning(component, message string, fields map[string]interface{}) {
	r.add(Entry{Level: zerolog.WarnLevel, Component: component, Message: message, Fields: fields})
}

func (r *Recorder) Error(component string, err error, fields map[string]interface{}) {
	r.add(Entry{Level: zerolog.ErrorLevel, Component: component, Message: "operation failed", Fields: fields, Err: err})
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// AtLevel filters recorded entries by level.
func (r *Recorder) AtLevel(level zerolog.Level) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
