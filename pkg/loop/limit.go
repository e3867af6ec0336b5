package loop

import (
	"fmt"

	"github.com/PalmosProject/palmos/pkg/stat"
)

// Limit throttles how often the loop renders.
type Limit int

const (
	// LimitAlways renders every frame.
	LimitAlways Limit = iota
	// LimitOnce renders at most once per reporting second.
	LimitOnce
	// LimitNever disables rendering.
	LimitNever
)

// Allows reports whether a frame may render, given the frame
// statistics recorded so far.
func (l Limit) Allows(frames stat.Stat) bool {
	switch l {
	case LimitOnce:
		return frames.Cycle() == 0
	case LimitNever:
		return false
	default:
		return true
	}
}

// String returns the limit's config spelling.
func (l Limit) String() string {
	switch l {
	case LimitAlways:
		return "always"
	case LimitOnce:
		return "once"
	case LimitNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseLimit parses a limit name. The empty string parses as
// LimitAlways.
func ParseLimit(s string) (Limit, error) {
	switch s {
	case "", "always":
		return LimitAlways, nil
	case "once":
		return LimitOnce, nil
	case "never":
		return LimitNever, nil
	default:
		return LimitAlways, fmt.Errorf("unknown render limit %q", s)
	}
}
