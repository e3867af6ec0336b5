package bench

import (
	"math"
	"math/rand"

	"github.com/PalmosProject/palmos/pkg/clock"
	"github.com/PalmosProject/palmos/pkg/loop"
	"github.com/PalmosProject/palmos/pkg/sec"
)

// Workload is a synthetic simulation state: a bank of sine
// oscillators advanced one fixed step per tick, with configurable
// busy-work so updates cost something like a real simulation would.
// Scale and Combine blend elementwise over the oscillator phases, so
// interpolated renders land between the last two ticks.
//
// The workload stops the loop itself once the configured duration has
// elapsed since Init.
type Workload struct {
	clk clock.Clock
	rng *rand.Rand

	phases []float64
	freqs  []float64

	updateCost sec.Sec
	jitter     float64
	duration   sec.Sec
	deadline   *clock.Timer

	// OnSec, when set, runs once per reporting second.
	OnSec func(l *loop.Loop)
}

// NewWorkload builds a workload of cfg.Size oscillators with
// frequencies drawn from the seeded generator.
func NewWorkload(c clock.Clock, cfg WorkloadConfig, seed int64, duration sec.Sec) *Workload {
	rng := rand.New(rand.NewSource(seed))
	w := &Workload{
		clk:        c,
		rng:        rng,
		phases:     make([]float64, cfg.Size),
		freqs:      make([]float64, cfg.Size),
		updateCost: sec.FromDuration(cfg.UpdateCost.Duration()),
		jitter:     float64(cfg.JitterPercent) / 100,
		duration:   duration,
	}
	for i := range w.freqs {
		// 0.5Hz to 2.5Hz
		w.freqs[i] = 0.5 + 2*rng.Float64()
	}
	return w
}

// Clone returns a snapshot with its own phase buffer. The frequency
// table is fixed after construction and stays shared.
func (w *Workload) Clone() loop.State {
	c := *w
	c.phases = make([]float64, len(w.phases))
	copy(c.phases, w.phases)
	return &c
}

// Scale returns a copy with every phase scaled by k.
func (w *Workload) Scale(k float64) loop.State {
	c := *w
	c.phases = make([]float64, len(w.phases))
	for i, p := range w.phases {
		c.phases[i] = p * k
	}
	return &c
}

// Combine returns a copy with phases summed elementwise.
func (w *Workload) Combine(other loop.State) loop.State {
	o := other.(*Workload)
	c := *w
	c.phases = make([]float64, len(w.phases))
	for i, p := range w.phases {
		c.phases[i] = p + o.phases[i]
	}
	return &c
}

// Init arms the scenario deadline.
func (w *Workload) Init(_ *loop.Loop, _ *clock.Timer) {
	w.deadline = clock.NewTimer(w.clk)
}

// Update advances every oscillator by one fixed step, burns the
// configured cost, and stops the loop once the deadline passes.
func (w *Workload) Update(l *loop.Loop) {
	dt := l.Dt().Seconds()
	for i, f := range w.freqs {
		w.phases[i] += 2 * math.Pi * f * dt
	}
	burn(w.clk, w.jittered(w.updateCost))
	if w.deadline.Elapsed() >= w.duration {
		l.Stop()
	}
}

// Sec forwards the per-second callback.
func (w *Workload) Sec(l *loop.Loop) {
	if w.OnSec != nil {
		w.OnSec(l)
	}
}

// Mean returns the average oscillator signal, a scalar probe of the
// (possibly blended) state.
func (w *Workload) Mean() float64 {
	if len(w.phases) == 0 {
		return 0
	}
	var sum float64
	for _, p := range w.phases {
		sum += math.Sin(p)
	}
	return sum / float64(len(w.phases))
}

// Phase returns the i-th oscillator phase.
func (w *Workload) Phase(i int) float64 { return w.phases[i] }

// Size returns the oscillator count.
func (w *Workload) Size() int { return len(w.phases) }

func (w *Workload) jittered(cost sec.Sec) sec.Sec {
	if w.jitter <= 0 || cost <= 0 {
		return cost
	}
	return cost.Mul(1 + w.jitter*(2*w.rng.Float64()-1))
}

// burn busy-waits until d has passed on c. The loop core never
// sleeps; simulated work spends time the same way.
func burn(c clock.Clock, d sec.Sec) {
	if d <= 0 {
		return
	}
	t := clock.NewTimer(c)
	for t.Elapsed() < d {
	}
}
