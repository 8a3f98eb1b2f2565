package system

import "time"

// Clock returns monotonic time in seconds.
type Clock func() float64

// WallClock reports seconds elapsed since it was created.
func WallClock() Clock {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}

// TickClock advances by a fixed step each time Tick is called. Hosts with a
// fixed update rate use it so frame time does not depend on scheduling.
type TickClock struct {
	step  float64
	ticks int64
}

func NewTickClock(ticksPerSecond int) *TickClock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &TickClock{step: 1 / float64(ticksPerSecond)}
}

// Tick advances the clock by one step.
func (c *TickClock) Tick() {
	c.ticks++
}

// Now returns the elapsed seconds.
func (c *TickClock) Now() float64 {
	return float64(c.ticks) * c.step
}
