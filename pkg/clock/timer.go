package clock

import "github.com/PalmosProject/palmos/pkg/sec"

// Timer measures elapsed time against a Clock.
//
// A Timer holds only its start instant; Elapsed is recomputed from
// the live clock on every call and never cached. Advance shifts the
// start instant forward, which is how callers consume measured time:
// advancing by a just-measured elapsed amount resets the reading to
// zero while keeping whatever the clock moved in between, and
// advancing by a fixed quantum carries any overshoot into the next
// reading, so a repeating cadence does not drift. This makes a Timer
// double as a "time owed" accumulator without reallocation.
type Timer struct {
	clock Clock
	start sec.Sec
}

// NewTimer returns a Timer started at the clock's current instant.
func NewTimer(c Clock) *Timer {
	return &Timer{clock: c, start: c.Now()}
}

// Elapsed returns the time passed since the start instant. It has no
// side effects; compare against thresholds with ordinary operators,
// e.g. t.Elapsed() >= sec.One.
func (t *Timer) Elapsed() sec.Sec {
	return t.clock.Now() - t.start
}

// Advance fast-forwards the timer by d, shrinking subsequent Elapsed
// readings by d. A negative d rolls bookkeeping back instead.
func (t *Timer) Advance(d sec.Sec) {
	t.start += d
}
