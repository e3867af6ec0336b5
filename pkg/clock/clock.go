// Package clock provides the monotonic time source for the timing
// toolkit, and the Timer that meters it.
//
// In production, use Real(), which reads monotonic seconds since
// process start. In tests and simulations, use NewManual() for
// deterministic time control.
package clock

import "github.com/PalmosProject/palmos/pkg/sec"

// Clock is a monotonic time source.
//
// Now reports an absolute instant as seconds since an arbitrary fixed
// epoch. Readings must be non-decreasing for the lifetime of the
// process; that is a caller contract, not a checked invariant. A
// violation surfaces only as a negative Timer elapsed reading.
type Clock interface {
	// Now returns the current instant.
	Now() sec.Sec
}
