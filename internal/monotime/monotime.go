// Package monotime provides the high-resolution clock the loop measures
// frame times with: a monotonic counter plus its frequency.
package monotime

import (
	"time"
)

// Source is a monotonic counter that advances Frequency() times per second.
type Source interface {
	Counter() uint64
	Frequency() uint64
}

// NanosPerSecond is the frequency of the system source.
const NanosPerSecond = uint64(time.Second)

var epoch = time.Now()

// Now returns the time elapsed since process start on the monotonic clock.
func Now() time.Duration {
	return time.Since(epoch)
}

type system struct{}

// System returns the process-wide monotonic source with nanosecond resolution.
func System() Source {
	return system{}
}

func (system) Counter() uint64 {
	return uint64(Now())
}

func (system) Frequency() uint64 {
	return NanosPerSecond
}

// Millis converts a counter interval to milliseconds.
func Millis(from, to, frequency uint64) float64 {
	if to < from || frequency == 0 {
		return 0
	}
	return float64(to-from) * 1000.0 / float64(frequency)
}

// Duration converts a counter interval to a time.Duration.
func Duration(from, to, frequency uint64) time.Duration {
	return time.Duration(Millis(from, to, frequency) * float64(time.Millisecond))
}
