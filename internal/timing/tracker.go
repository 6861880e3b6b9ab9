// Package timing records how long startup steps take so they can be logged.
package timing

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type info struct {
	operation string
	start     time.Time
}

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

// StartTiming is safe on a nil Tracker, which records nothing.
func (tt *Tracker) StartTiming(operation string) context.Context {
	if tt == nil || !tt.isEnabled() {
		return context.Background()
	}

	return context.WithValue(context.Background(), timingKey{}, info{
		operation: operation,
		start:     tt.now(),
	})
}

func (tt *Tracker) EndTiming(ctx context.Context) {
	if tt == nil {
		return
	}

	ti, ok := ctx.Value(timingKey{}).(info)
	if !ok {
		return
	}

	duration := tt.now().Sub(ti.start)

	tt.mu.Lock()
	tt.timings[ti.operation] = append(tt.timings[ti.operation], duration)
	tt.mu.Unlock()
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Last returns the most recent duration for operation, or zero.
func (tt *Tracker) Last(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}
	return timings[len(timings)-1]
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}
