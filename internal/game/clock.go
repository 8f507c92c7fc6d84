package game

import "time"

// Clock gates simulation ticks against wall-clock time and ramps the tick
// interval down over a run. It decouples the simulation rate from the render
// rate: Bubble Tea drives frames at ~60 Hz, the clock fires ticks at the
// current interval.
type Clock struct {
	now func() time.Time

	interval time.Duration
	initial  time.Duration
	lastFire time.Time

	rampEvery  time.Duration
	rampFactor float64
	lastRamp   time.Time
}

// NewClock creates a clock reading time through now (nil means time.Now).
// The tick interval starts at initial and is multiplied by factor every
// rampEvery of wall-clock time.
func NewClock(now func() time.Time, initial, rampEvery time.Duration, factor float64) *Clock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Clock{
		now:        now,
		interval:   initial,
		initial:    initial,
		lastFire:   t,
		rampEvery:  rampEvery,
		rampFactor: factor,
		lastRamp:   t,
	}
}

// ShouldAdvance reports whether a full tick interval has elapsed since the
// last fire, resetting the fire timestamp when it has. Otherwise it has no
// side effect.
func (c *Clock) ShouldAdvance() bool {
	t := c.now()
	if t.Sub(c.lastFire) >= c.interval {
		c.lastFire = t
		return true
	}
	return false
}

// Ramp multiplies the tick interval by the ramp factor once rampEvery has
// elapsed since the previous ramp. Returns true when a ramp was applied.
func (c *Clock) Ramp() bool {
	t := c.now()
	if t.Sub(c.lastRamp) >= c.rampEvery {
		c.interval = time.Duration(float64(c.interval) * c.rampFactor)
		c.lastRamp = t
		return true
	}
	return false
}

// ResetSpeed restores the initial interval and restarts the ramp window.
// The gate timestamp is left alone so the next tick is not delayed.
func (c *Clock) ResetSpeed() {
	c.interval = c.initial
	c.lastRamp = c.now()
}

// Interval returns the current tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Now returns the clock's current wall time.
func (c *Clock) Now() time.Time {
	return c.now()
}
