// Package timewindow computes UTC time windows relative to the current time.
package timewindow

import (
	"time"

	"github.com/ethpandaops/logtools/internal/config"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Window is a pair of UTC instants derived from a single reading of the clock.
type Window struct {
	Start time.Time
	End   time.Time
}

// Compute offsets now by startOffset and endOffset.
func Compute(now time.Time, startOffset, endOffset time.Duration) Window {
	now = now.UTC()

	return Window{
		Start: now.Add(startOffset),
		End:   now.Add(endOffset),
	}
}

// Format renders t in UTC as YYYY-MM-DDTHH:MMZ.
func Format(t time.Time) string {
	return t.UTC().Format(config.TimestampLayout)
}

// Lines returns the formatted start and end, in that order.
func (w Window) Lines() []string {
	return []string{Format(w.Start), Format(w.End)}
}
