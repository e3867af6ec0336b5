package clock

import "github.com/PalmosProject/palmos/pkg/sec"

// Manual is a Clock under explicit caller control, for tests and
// deterministic simulation. The zero value reads instant zero.
//
// Like the rest of the toolkit it is single-threaded and does no
// locking. Set can move time backward, which is useful for exercising
// contract-violation behavior.
type Manual struct {
	now sec.Sec
}

// NewManual returns a Manual clock reading start.
func NewManual(start sec.Sec) *Manual {
	return &Manual{now: start}
}

// Now returns the current instant.
func (m *Manual) Now() sec.Sec {
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d sec.Sec) {
	m.now += d
}

// Set moves the clock to instant t.
func (m *Manual) Set(t sec.Sec) {
	m.now = t
}
