// Package frameclock counts rendered frames over rolling one-second windows
// and keeps the last completed window's count as display text.
package frameclock

import "strconv"

// Clock tracks frames per one-second window. Counter values are in ticks of
// the frequency passed to New.
type Clock struct {
	frequency   uint64
	windowStart uint64
	count       int
	text        string
	windows     int
}

// New creates a clock whose first window starts at start.
func New(frequency, start uint64) *Clock {
	return &Clock{
		frequency:   frequency,
		windowStart: start,
		text:        "0",
	}
}

// Tick is called once per loop iteration with the current counter value.
// When now is past the end of the current window, the window's frame count
// is published to Text, the count resets and a new window starts at now.
// Returns the frame count of the current window.
func (c *Clock) Tick(now uint64) int {
	if now > c.windowStart+c.frequency {
		c.text = strconv.Itoa(c.count)
		c.count = 0
		c.windowStart = now
		c.windows++
	}
	return c.count
}

// Frame records one produced frame in the current window.
func (c *Clock) Frame() {
	c.count++
}

// Count returns the number of frames in the current, incomplete window.
func (c *Clock) Count() int {
	return c.count
}

// Text returns the previous full window's frame count, or "0" before the
// first window has completed.
func (c *Clock) Text() string {
	return c.text
}

// Windows returns how many windows have completed.
func (c *Clock) Windows() int {
	return c.windows
}
