package clock

import (
	"time"

	"github.com/PalmosProject/palmos/pkg/sec"
)

// epoch anchors Real readings. time.Since uses its monotonic part,
// so wall-clock adjustments never move Real backward.
var epoch = time.Now()

// realClock reads the process-monotonic clock.
type realClock struct{}

// Real returns a Clock reporting monotonic seconds since process
// start. This is the default for production use.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() sec.Sec {
	return sec.FromDuration(time.Since(epoch))
}
