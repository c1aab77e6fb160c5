package monotime

import (
	"math"
	"testing"
	"time"
)

func TestSystemIsMonotonic(t *testing.T) {
	src := System()
	if src.Frequency() != NanosPerSecond {
		t.Fatalf("Frequency() = %d, expected %d", src.Frequency(), NanosPerSecond)
	}

	prev := src.Counter()
	for i := 0; i < 1000; i++ {
		now := src.Counter()
		if now < prev {
			t.Fatalf("counter went backwards: %d -> %d", prev, now)
		}
		prev = now
	}
}

func TestMillis(t *testing.T) {
	tests := []struct {
		name           string
		from, to, freq uint64
		expected       float64
	}{
		{"one second", 0, 1000, 1000, 1000},
		{"sixteen ms in ns", 0, 16_000_000, NanosPerSecond, 16},
		{"backwards", 10, 5, 1000, 0},
		{"zero frequency", 0, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Millis(tc.from, tc.to, tc.freq)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Millis() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestManual(t *testing.T) {
	m := NewManual(1000)
	if m.Counter() != 0 {
		t.Fatalf("new manual counter = %d, expected 0", m.Counter())
	}

	m.Advance(250 * time.Millisecond)
	if m.Counter() != 250 {
		t.Errorf("after Advance(250ms) counter = %d, expected 250", m.Counter())
	}

	m.AdvanceTicks(750)
	if m.Counter() != 1000 {
		t.Errorf("after AdvanceTicks(750) counter = %d, expected 1000", m.Counter())
	}

	m.Advance(-time.Second)
	if m.Counter() != 1000 {
		t.Error("negative Advance should be ignored")
	}

	if d := Duration(0, m.Counter(), m.Frequency()); d != time.Second {
		t.Errorf("Duration() = %v, expected 1s", d)
	}

	if NewManual(0).Frequency() != NanosPerSecond {
		t.Error("zero frequency should default to nanoseconds")
	}
}
