package stat

import (
	"testing"

	"github.com/PalmosProject/palmos/pkg/clock"
	"github.com/PalmosProject/palmos/pkg/sec"
)

func record(s *Stat, n int) {
	for i := 0; i < n; i++ {
		s.Record(sec.Milli)
	}
}

func TestStat_ZeroValue(t *testing.T) {
	var s Stat
	if got := s.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	if got := s.Rate(); got != 0 {
		t.Errorf("Rate() = %d, want 0", got)
	}
	if got := s.Average(); got != 0 {
		t.Errorf("Average() = %v, want 0", got)
	}
}

// Rate reflects the cycle closed by the most recent Refresh, never
// the live cycle.
func TestStat_RateLagsRefresh(t *testing.T) {
	var s Stat

	record(&s, 10)
	s.Refresh()
	if got := s.Rate(); got != 10 {
		t.Errorf("Rate() = %d, want 10", got)
	}

	record(&s, 15)
	if got := s.Count(); got != 25 {
		t.Errorf("Count() = %d, want 25", got)
	}
	if got := s.Rate(); got != 10 {
		t.Errorf("Rate() = %d, want 10 before the next Refresh", got)
	}

	s.Refresh()
	if got := s.Rate(); got != 15 {
		t.Errorf("Rate() = %d, want 15", got)
	}
	if got := s.Count(); got != 25 {
		t.Errorf("Count() = %d, want 25 (Refresh leaves lifetime totals)", got)
	}
}

func TestStat_Cycle(t *testing.T) {
	var s Stat
	record(&s, 3)

	if got := s.Cycle(); got != 3 {
		t.Errorf("Cycle() = %d, want 3", got)
	}

	s.Refresh()
	if got := s.Cycle(); got != 0 {
		t.Errorf("Cycle() = %d, want 0 after Refresh", got)
	}
	if got := s.Rate(); got != 3 {
		t.Errorf("Rate() = %d, want 3", got)
	}
}

func TestStat_Average(t *testing.T) {
	var s Stat
	for _, d := range []sec.Sec{1, 2, 3} {
		s.Record(d)
	}
	if got := s.Average(); got != 2 {
		t.Errorf("Average() = %v, want 2", got)
	}
}

func TestStat_AverageEmpty(t *testing.T) {
	var s Stat
	if got := s.Average(); got != 0 {
		t.Errorf("Average() = %v, want 0 (not NaN)", got)
	}
}

func TestSpan_RecordsOnEnd(t *testing.T) {
	c := clock.NewManual(0)
	var s Stat

	sp := Begin(c, &s)
	c.Advance(0.25)
	sp.End()

	if got := s.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	if got := s.Average(); got != 0.25 {
		t.Errorf("Average() = %v, want 0.25", got)
	}
}

func TestSpan_DeferredEndRecordsOnPanic(t *testing.T) {
	c := clock.NewManual(0)
	var s Stat

	func() {
		defer func() { _ = recover() }()
		defer Begin(c, &s).End()
		c.Advance(sec.Milli.Mul(5))
		panic("unwound")
	}()

	if got := s.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1 (record must survive unwinding)", got)
	}
	if got := s.Average(); got != sec.Milli.Mul(5) {
		t.Errorf("Average() = %v, want %v", got, sec.Milli.Mul(5))
	}
}

func TestSpan_OneRecordPerSpan(t *testing.T) {
	c := clock.NewManual(0)
	var s Stat

	for i := 0; i < 4; i++ {
		func() {
			defer Begin(c, &s).End()
			c.Advance(sec.Milli)
		}()
	}

	if got := s.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}
