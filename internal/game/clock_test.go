package game

import (
	"testing"
	"time"
)

// fakeTime is an adjustable clock source for deterministic timing tests.
type fakeTime struct {
	t time.Time
}

func newFakeTime() *fakeTime {
	return &fakeTime{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockGate(t *testing.T) {
	ft := newFakeTime()
	c := NewClock(ft.now, 200*time.Millisecond, 10*time.Second, 0.9)

	if c.ShouldAdvance() {
		t.Error("gate should not fire before the interval elapses")
	}

	ft.advance(100 * time.Millisecond)
	if c.ShouldAdvance() {
		t.Error("gate should not fire at half the interval")
	}

	ft.advance(100 * time.Millisecond)
	if !c.ShouldAdvance() {
		t.Error("gate should fire once the interval has elapsed")
	}
	if c.ShouldAdvance() {
		t.Error("gate should reset after firing")
	}

	// A late poll still fires exactly once.
	ft.advance(700 * time.Millisecond)
	if !c.ShouldAdvance() {
		t.Error("gate should fire after a long pause")
	}
	if c.ShouldAdvance() {
		t.Error("a long pause must not queue multiple fires")
	}
}

func TestClockRamp(t *testing.T) {
	ft := newFakeTime()
	c := NewClock(ft.now, 200*time.Millisecond, 10*time.Second, 0.9)

	ft.advance(9 * time.Second)
	c.Ramp()
	if c.Interval() != 200*time.Millisecond {
		t.Errorf("interval ramped early: %v", c.Interval())
	}

	ft.advance(time.Second)
	c.Ramp()
	if c.Interval() != 180*time.Millisecond {
		t.Errorf("interval after first ramp = %v, expected 180ms", c.Interval())
	}

	// The ramp window restarts from the ramp moment.
	c.Ramp()
	if c.Interval() != 180*time.Millisecond {
		t.Errorf("interval ramped twice in one window: %v", c.Interval())
	}

	ft.advance(10 * time.Second)
	c.Ramp()
	if c.Interval() != 162*time.Millisecond {
		t.Errorf("interval after second ramp = %v, expected 162ms", c.Interval())
	}
}

func TestClockResetSpeed(t *testing.T) {
	ft := newFakeTime()
	c := NewClock(ft.now, 200*time.Millisecond, 10*time.Second, 0.9)

	ft.advance(10 * time.Second)
	c.Ramp()
	if c.Interval() == 200*time.Millisecond {
		t.Fatal("expected ramped interval before reset")
	}

	c.ResetSpeed()
	if c.Interval() != 200*time.Millisecond {
		t.Errorf("interval after reset = %v, expected 200ms", c.Interval())
	}

	// Reset also restarts the ramp window.
	ft.advance(time.Second)
	c.Ramp()
	if c.Interval() != 200*time.Millisecond {
		t.Errorf("interval ramped right after reset: %v", c.Interval())
	}
}
