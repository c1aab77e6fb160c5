// Package sim holds the moving square: its position, velocity and size, and
// the per-tick integration that bounces it off the screen edges.
package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// Default square settings
const (
	DefaultVelocity = 0.4 // pixels per millisecond on each axis
	DefaultSize     = 40
)

// Mode selects how a wall contact is resolved.
type Mode int

const (
	// ModePause negates the velocity and leaves the position unchanged for
	// the tick that would have crossed the wall.
	ModePause Mode = iota

	// ModeClamp moves the square flush against the wall and negates the
	// velocity in the same tick.
	ModeClamp
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModePause:
		return "pause"
	case ModeClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseMode converts a config name to a Mode. Empty means ModePause.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "pause":
		return ModePause, nil
	case "clamp":
		return ModeClamp, nil
	default:
		return ModePause, fmt.Errorf("sim: unknown physics mode %q", s)
	}
}

// Bounds is the playfield size the square is confined to.
type Bounds struct {
	W, H float64
}

// Bounce reports which axes reversed during an update.
type Bounce struct {
	X, Y bool
}

// Any reports whether either axis bounced.
func (b Bounce) Any() bool {
	return b.X || b.Y
}

// State is the square's position, velocity and size.
type State struct {
	X, Y   float64 // Top-left corner
	DX, DY float64 // Velocity in pixels per millisecond
	Size   int
	Bounds Bounds
	Mode   Mode
}

// New creates a state with explicit initial values.
func New(x, y, dx, dy float64, size int, bounds Bounds) *State {
	return &State{
		X:      x,
		Y:      y,
		DX:     dx,
		DY:     dy,
		Size:   size,
		Bounds: bounds,
	}
}

// Default creates the square at the screen centre moving down and right.
func Default(bounds Bounds) *State {
	return New(bounds.W/2, bounds.H/2, DefaultVelocity, DefaultVelocity, DefaultSize, bounds)
}

// Update advances the square by deltaMs milliseconds. Each axis is handled
// independently: if the candidate position would leave the bounds, the
// velocity on that axis is negated instead of moving.
func (s *State) Update(deltaMs float64) Bounce {
	return Bounce{
		X: s.step(&s.X, &s.DX, s.Bounds.W, deltaMs),
		Y: s.step(&s.Y, &s.DY, s.Bounds.H, deltaMs),
	}
}

func (s *State) step(pos, vel *float64, limit, deltaMs float64) bool {
	size := float64(s.Size)
	next := *pos + *vel*deltaMs
	if next < 0 || next+size > limit {
		*vel = -*vel
		if s.Mode == ModeClamp {
			*pos = core.ClampF(next, 0, math.Max(limit-size, 0))
		}
		return true
	}
	*pos = next
	return false
}

// Rect returns the square in whole pixels, truncating the position.
func (s *State) Rect() core.Rect {
	return core.NewRect(int(s.X), int(s.Y), s.Size, s.Size)
}

// Position returns the top-left corner.
func (s *State) Position() core.Vec2 {
	return core.Vec2{X: s.X, Y: s.Y}
}

// InBounds reports whether the square lies entirely within the bounds.
func (s *State) InBounds() bool {
	size := float64(s.Size)
	return s.X >= 0 && s.Y >= 0 && s.X+size <= s.Bounds.W && s.Y+size <= s.Bounds.H
}
