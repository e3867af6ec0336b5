package stat

import (
	"github.com/PalmosProject/palmos/pkg/clock"
	"github.com/PalmosProject/palmos/pkg/sec"
)

// Span is a scoped measurement that feeds exactly one sample to a
// Stat when it ends. The intended form is
//
//	defer stat.Begin(clk, &st).End()
//
// which records on every exit path, including panics. A Stat must not
// have two spans active at once; the toolkit is single-threaded and
// never does this, and the package does not check for it.
type Span struct {
	clock clock.Clock
	stat  *Stat
	start sec.Sec
}

// Begin opens a span measuring from the clock's current instant.
func Begin(c clock.Clock, s *Stat) Span {
	return Span{clock: c, stat: s, start: c.Now()}
}

// End records the time elapsed since Begin into the span's Stat.
func (sp Span) End() {
	sp.stat.Record(sp.clock.Now() - sp.start)
}
