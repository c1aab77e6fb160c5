package monotime

import (
	"math"
	"time"
)

// Manual is a Source that only moves when told to. Headless runs use it to
// step the loop at a fixed rate independent of wall time.
type Manual struct {
	counter   uint64
	frequency uint64
}

// NewManual creates a manual source at counter zero. A zero frequency
// defaults to nanoseconds.
func NewManual(frequency uint64) *Manual {
	if frequency == 0 {
		frequency = NanosPerSecond
	}
	return &Manual{frequency: frequency}
}

func (m *Manual) Counter() uint64 {
	return m.counter
}

func (m *Manual) Frequency() uint64 {
	return m.frequency
}

// Set moves the counter to an absolute value.
func (m *Manual) Set(counter uint64) {
	m.counter = counter
}

// AdvanceTicks moves the counter forward by n ticks.
func (m *Manual) AdvanceTicks(n uint64) {
	m.counter += n
}

// Advance moves the counter forward by d.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.counter += uint64(math.Round(d.Seconds() * float64(m.frequency)))
}
