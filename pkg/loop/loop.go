// Package loop provides a fixed-timestep main loop.
//
// A Loop advances a State at a constant tick rate no matter how fast
// frames come: owed time accumulates and is drained in fixed steps,
// and each frame renders the two most recent states blended by the
// fractional tick remainder, so motion stays smooth when the frame
// rate and the tick rate disagree. Tick and frame durations are
// recorded in stat.Stat accumulators and reported once per elapsed
// second.
//
// The loop is single-threaded and cooperative. It never spawns
// goroutines and never blocks; stop requests and context cancellation
// are observed at frame boundaries only.
package loop

import (
	"context"
	"errors"
	"log/slog"

	"github.com/PalmosProject/palmos/pkg/clock"
	"github.com/PalmosProject/palmos/pkg/sec"
	"github.com/PalmosProject/palmos/pkg/stat"
)

var (
	// ErrRunning is returned by Run when the loop is already running.
	ErrRunning = errors.New("loop: already running")

	// ErrStopped is returned by Run when the loop has already run to
	// completion. A Loop runs once.
	ErrStopped = errors.New("loop: stopped")
)

// State is the simulation value a Loop advances.
//
// Clone, Scale, and Combine exist so the loop can interpolate between
// the last two states when rendering. Scale must distribute over
// Combine for the blend to be consistent. The loop only combines a
// state with clones of itself, so implementations may assume other
// has their own concrete type.
type State interface {
	// Clone returns a value snapshot of the state.
	Clone() State

	// Scale returns a new state scaled by a dimensionless factor.
	Scale(k float64) State

	// Combine returns a new state superposing this state and other.
	Combine(other State) State

	// Init runs once, before the first frame. setup measures time
	// since Run began, a free profiling hook for one-time
	// initialization cost.
	Init(l *Loop, setup *clock.Timer)

	// Update advances the state by exactly one fixed step of l.Dt().
	// It is never called with a variable delta.
	Update(l *Loop)

	// Sec runs once per elapsed second, before the per-second rates
	// are refreshed, so l.Ticks() and l.Frames() still report the
	// previous cycle.
	Sec(l *Loop)
}

// Render consumes an interpolated state, at most once per frame.
type Render interface {
	Render(l *Loop, blended State)
}

// RenderFunc adapts a function to the Render interface.
type RenderFunc func(l *Loop, blended State)

// Render calls f.
func (f RenderFunc) Render(l *Loop, blended State) { f(l, blended) }

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseStopped
)

// Loop drives a State at a fixed tick rate.
type Loop struct {
	clock clock.Clock
	dt    sec.Sec
	acc   sec.Sec

	tick   *clock.Timer
	second *clock.Timer

	ticks  stat.Stat
	frames stat.Stat

	cur  State
	prev State

	phase   phase
	stop    bool
	limit   Limit
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the loop's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithLimit sets the initial render throttle. Defaults to LimitAlways.
func WithLimit(limit Limit) Option {
	return func(l *Loop) { l.limit = limit }
}

// WithMetrics attaches a collector the loop publishes to once per
// reporting second.
func WithMetrics(m *Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

// New creates a Loop that ticks rate times per second on c. It panics
// if rate is not positive. Both internal timers start immediately, so
// time spent between New and Run counts as owed simulation time.
func New(c clock.Clock, rate float64, opts ...Option) *Loop {
	if rate <= 0 {
		panic("loop: non-positive tick rate")
	}
	l := &Loop{
		clock:  c,
		dt:     sec.One.Div(rate),
		tick:   clock.NewTimer(c),
		second: clock.NewTimer(c),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run drives s with r until Stop is called or ctx is done. Init runs
// once before the first frame. Run returns nil after a Stop request,
// ctx.Err() when the context ended the run, ErrRunning if the loop is
// already running, and ErrStopped if it already ran.
//
// Context cancellation is observed at frame boundaries only and then
// behaves exactly like Stop: cooperative, never mid-update.
func (l *Loop) Run(ctx context.Context, s State, r Render) error {
	switch l.phase {
	case phaseRunning:
		return ErrRunning
	case phaseStopped:
		return ErrStopped
	}
	l.phase = phaseRunning

	setup := clock.NewTimer(l.clock)
	l.cur = s
	s.Init(l, setup)
	l.prev = l.cur.Clone()

	l.logger.Info("starting loop",
		slog.String("dt", l.dt.String()),
		slog.String("limit", l.limit.String()),
	)

	for {
		if ctx.Err() != nil {
			l.stop = true
		}
		l.frame(r)
		if l.stop {
			l.phase = phaseStopped
			l.logger.Info("loop stopped",
				slog.Uint64("ticks", l.ticks.Count()),
				slog.Uint64("frames", l.frames.Count()),
			)
			return ctx.Err()
		}
	}
}

// frame executes one frame: consume owed time, drain fixed ticks,
// render an interpolated state, and report once per elapsed second.
func (l *Loop) frame(r Render) {
	e := l.tick.Elapsed()
	l.tick.Advance(e)
	l.acc += e

	for l.acc >= l.dt && !l.stop {
		l.prev = l.cur.Clone()
		l.update()
		l.acc -= l.dt
	}

	if l.limit.Allows(l.frames) {
		alpha := l.acc.Seconds() / l.dt.Seconds()
		if alpha > 1 {
			// A stop request can interrupt the drain with more than
			// one tick still owed; render the final state as-is.
			alpha = 1
		}
		blended := l.prev.Scale(1 - alpha).Combine(l.cur.Scale(alpha))
		l.render(r, blended)
	}

	if !l.stop && l.second.Elapsed() >= sec.One {
		l.cur.Sec(l)
		l.ticks.Refresh()
		l.frames.Refresh()
		if l.metrics != nil {
			l.metrics.publish(l.ticks, l.frames)
		}
		l.logger.Debug("second elapsed",
			slog.Uint64("tick_rate", l.ticks.Rate()),
			slog.Uint64("frame_rate", l.frames.Rate()),
			slog.String("tick_avg", l.ticks.Average().String()),
			slog.String("frame_avg", l.frames.Average().String()),
		)
		l.second.Advance(sec.One)
	}
}

func (l *Loop) update() {
	defer stat.Begin(l.clock, &l.ticks).End()
	l.cur.Update(l)
}

func (l *Loop) render(r Render, blended State) {
	defer stat.Begin(l.clock, &l.frames).End()
	r.Render(l, blended)
}

// Stop requests cooperative termination; idempotent. An in-progress
// tick completes and is recorded, at most one more render happens,
// and no further Update or Sec calls occur.
func (l *Loop) Stop() { l.stop = true }

// Dt returns the fixed tick duration.
func (l *Loop) Dt() sec.Sec { return l.dt }

// Ticks returns a snapshot of the tick statistics.
func (l *Loop) Ticks() stat.Stat { return l.ticks }

// Frames returns a snapshot of the frame statistics.
func (l *Loop) Frames() stat.Stat { return l.frames }

// SetLimit swaps the render throttle. Safe from any callback.
func (l *Loop) SetLimit(limit Limit) { l.limit = limit }
