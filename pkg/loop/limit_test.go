package loop

import (
	"testing"

	"github.com/PalmosProject/palmos/pkg/stat"
)

func TestLimit_Allows(t *testing.T) {
	var fresh stat.Stat

	var busy stat.Stat
	busy.Record(0.001)

	refreshed := busy
	refreshed.Refresh()

	tests := []struct {
		name   string
		limit  Limit
		frames stat.Stat
		want   bool
	}{
		{"always fresh", LimitAlways, fresh, true},
		{"always busy", LimitAlways, busy, true},
		{"once fresh", LimitOnce, fresh, true},
		{"once busy", LimitOnce, busy, false},
		{"once refreshed", LimitOnce, refreshed, true},
		{"never fresh", LimitNever, fresh, false},
		{"never busy", LimitNever, busy, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.limit.Allows(tc.frames); got != tc.want {
				t.Errorf("Allows() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLimit_String(t *testing.T) {
	tests := []struct {
		limit Limit
		want  string
	}{
		{LimitAlways, "always"},
		{LimitOnce, "once"},
		{LimitNever, "never"},
		{Limit(42), "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.limit.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in   string
		want Limit
	}{
		{"", LimitAlways},
		{"always", LimitAlways},
		{"once", LimitOnce},
		{"never", LimitNever},
	}
	for _, tc := range tests {
		t.Run("in="+tc.in, func(t *testing.T) {
			got, err := ParseLimit(tc.in)
			if err != nil {
				t.Fatalf("ParseLimit(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseLimit(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseLimit_Unknown(t *testing.T) {
	if _, err := ParseLimit("sometimes"); err == nil {
		t.Error("ParseLimit accepted an unknown name")
	}
}

func TestParseLimit_RoundTrip(t *testing.T) {
	for _, limit := range []Limit{LimitAlways, LimitOnce, LimitNever} {
		got, err := ParseLimit(limit.String())
		if err != nil {
			t.Fatalf("ParseLimit(%q): %v", limit.String(), err)
		}
		if got != limit {
			t.Errorf("round trip of %v = %v", limit, got)
		}
	}
}
