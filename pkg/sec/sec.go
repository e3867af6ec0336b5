// Package sec provides the float64-seconds duration type used
// throughout the toolkit.
//
// Sec is to simulation arithmetic what time.Duration is to wall-clock
// code: a defined numeric type with named constants and explicit
// conversions. Being floating point, it scales by dimensionless
// factors and carries fractional deficits without integer truncation,
// which is what accumulator-based loops need.
package sec

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Sec is a signed span of time in seconds.
//
// Addition, subtraction, negation and comparisons are the native
// operators. Scaling by a dimensionless factor goes through Mul and
// Div; multiplying two Sec values would change dimension and is not
// part of the API. Comparisons are exact floating-point comparisons
// with no tolerance baked in. Negative values are meaningful and
// represent deficit or remaining time; nothing rejects them.
type Sec float64

// Common scales as pre-scaled values.
const (
	Nano   Sec = 1e-9
	Micro  Sec = 1e-6
	Milli  Sec = 1e-3
	One    Sec = 1
	Kilo   Sec = 1e3
	Mega   Sec = 1e6
	Giga   Sec = 1e9
	Minute Sec = 60
	Hour   Sec = 3600
	Day    Sec = 86400
)

// FromDuration converts a time.Duration to Sec.
func FromDuration(d time.Duration) Sec {
	return Sec(d.Seconds())
}

// Duration converts s to a time.Duration, rounding to the nearest
// nanosecond. Round-tripping through FromDuration is lossless within
// float64 precision for sub-second through multi-hour spans.
func (s Sec) Duration() time.Duration {
	return time.Duration(math.Round(float64(s) * float64(time.Second)))
}

// Seconds returns s as a bare float64.
func (s Sec) Seconds() float64 {
	return float64(s)
}

// Mul returns s scaled by the dimensionless factor k.
func (s Sec) Mul(k float64) Sec {
	return Sec(float64(s) * k)
}

// Div returns s divided by the dimensionless factor k.
func (s Sec) Div(k float64) Sec {
	return Sec(float64(s) / k)
}

// String formats s as a bare seconds count, e.g. "0.0105s".
func (s Sec) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64) + "s"
}

// Parse reads a Sec from either a bare seconds literal ("0.25") or
// any form time.ParseDuration accepts ("250ms", "1h30m").
func Parse(text string) (Sec, error) {
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return Sec(f), nil
	}
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds value %q: %w", text, err)
	}
	return FromDuration(d), nil
}
