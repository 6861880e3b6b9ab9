package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeClock(steps ...time.Duration) func() time.Time {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		t := base
		if i < len(steps) {
			t = base.Add(steps[i])
		}
		i++
		return t
	}
}

func TestTrackerRecordsDurations(t *testing.T) {
	tt := NewTracker()
	tt.now = fakeClock(0, 5*time.Millisecond, 0, 15*time.Millisecond)

	tt.EndTiming(tt.StartTiming("activate"))
	tt.EndTiming(tt.StartTiming("activate"))

	assert.Equal(t, []time.Duration{5 * time.Millisecond, 15 * time.Millisecond}, tt.GetTimings("activate"))
	assert.Equal(t, 10*time.Millisecond, tt.GetAverageTime("activate"))
	assert.Equal(t, 15*time.Millisecond, tt.Last("activate"))
}

func TestTrackerDisabled(t *testing.T) {
	tt := NewTracker()
	tt.SetEnabled(false)

	tt.EndTiming(tt.StartTiming("icon_load"))

	assert.Nil(t, tt.GetTimings("icon_load"))
	assert.Zero(t, tt.Last("icon_load"))
}

func TestNilTrackerIsNoop(t *testing.T) {
	var tt *Tracker
	assert.NotPanics(t, func() {
		tt.EndTiming(tt.StartTiming("icon_load"))
	})
}
