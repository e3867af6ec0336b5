// Package stat provides running statistics for metering tick and
// frame work.
package stat

import "github.com/PalmosProject/palmos/pkg/sec"

// Stat accumulates recorded durations and counts them against an
// explicit refresh boundary.
//
// Record adds a sample to the lifetime totals and to the current
// cycle. Refresh snapshots the cycle count into the rate and starts a
// new cycle; calling it once per reporting boundary turns "events
// since last boundary" into a rate. Rate always reflects the cycle
// closed by the most recent Refresh, never the live cycle.
//
// The zero value is an empty Stat ready for use.
type Stat struct {
	count uint64
	cycle uint64
	sum   sec.Sec
	rate  uint64
}

// Record adds one sample of duration d.
func (s *Stat) Record(d sec.Sec) {
	s.count++
	s.cycle++
	s.sum += d
}

// Refresh closes the current cycle: the cycle count becomes the rate
// and the cycle restarts at zero. Lifetime totals are unaffected.
func (s *Stat) Refresh() {
	s.rate = s.cycle
	s.cycle = 0
}

// Count returns the lifetime number of recorded samples.
func (s Stat) Count() uint64 {
	return s.count
}

// Cycle returns the number of samples recorded since the last
// Refresh.
func (s Stat) Cycle() uint64 {
	return s.cycle
}

// Rate returns the cycle count captured by the most recent Refresh.
func (s Stat) Rate() uint64 {
	return s.rate
}

// Average returns the mean recorded duration, or 0 before the first
// sample.
func (s Stat) Average() sec.Sec {
	if s.count == 0 {
		return 0
	}
	return s.sum.Div(float64(s.count))
}
