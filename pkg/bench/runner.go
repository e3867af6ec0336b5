package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PalmosProject/palmos/pkg/clock"
	"github.com/PalmosProject/palmos/pkg/loop"
	"github.com/PalmosProject/palmos/pkg/sec"
)

// Runner executes one benchmark scenario under a fixed-timestep loop.
type Runner struct {
	scenario *Scenario
	logger   *slog.Logger
	clock    clock.Clock
	console  *Console
	metrics  *loop.Metrics

	samples    []Sample
	lastSignal float64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithClock sets the clock the loop runs on. Defaults to the real
// monotonic clock.
func WithClock(c clock.Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithConsole enables styled terminal progress and results.
func WithConsole(console *Console) RunnerOption {
	return func(r *Runner) { r.console = console }
}

// WithMetrics attaches a Prometheus collector to the loop.
func WithMetrics(m *loop.Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner creates a runner for the scenario.
func NewRunner(scenario *Scenario, opts ...RunnerOption) *Runner {
	r := &Runner{
		scenario: scenario,
		logger:   slog.Default(),
		clock:    clock.Real(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the scenario and returns its report. The workload
// stops the loop once the scenario duration has elapsed; ctx
// cancellation stops it early at the next frame boundary.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	limit, err := r.scenario.Limit()
	if err != nil {
		return nil, err
	}

	seed := r.scenario.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	duration := sec.FromDuration(r.scenario.Duration.Duration())

	r.logger.Info("starting benchmark",
		slog.String("scenario", r.scenario.Name),
		slog.Float64("tick_rate", r.scenario.TickRate),
		slog.Duration("duration", r.scenario.Duration.Duration()),
		slog.Int64("seed", seed),
	)
	if r.console != nil {
		r.console.PrintHeader(r.scenario, seed)
	}

	w := NewWorkload(r.clock, r.scenario.Workload, seed, duration)
	w.OnSec = r.sample

	opts := []loop.Option{
		loop.WithLogger(r.logger.With(slog.String("component", "loop"))),
		loop.WithLimit(limit),
	}
	if r.metrics != nil {
		opts = append(opts, loop.WithMetrics(r.metrics))
	}

	renderCost := sec.FromDuration(r.scenario.Workload.RenderCost.Duration())
	render := loop.RenderFunc(func(_ *loop.Loop, blended loop.State) {
		r.lastSignal = blended.(*Workload).Mean()
		burn(r.clock, renderCost)
	})

	l := loop.New(r.clock, r.scenario.TickRate, opts...)

	started := time.Now()
	if err := l.Run(ctx, w, render); err != nil {
		return nil, fmt.Errorf("benchmark run: %w", err)
	}
	ended := time.Now()

	if r.console != nil {
		r.console.ClearProgress()
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Scenario:  r.scenario.Name,
		StartTime: started,
		EndTime:   ended,
		TickRate:  r.scenario.TickRate,
		Seed:      seed,
		Summary:   summarize(l, r.samples),
		Timeline:  r.samples,
	}

	r.logger.Info("benchmark complete",
		slog.String("run_id", report.RunID),
		slog.Uint64("ticks", report.Summary.TotalTicks),
		slog.Uint64("frames", report.Summary.TotalFrames),
	)

	return report, nil
}

// sample runs inside the loop's per-second callback, before the stats
// refresh, so Cycle still holds the second that just ended.
func (r *Runner) sample(l *loop.Loop) {
	ticks, frames := l.Ticks(), l.Frames()
	s := Sample{
		Second:    len(r.samples) + 1,
		TickRate:  ticks.Cycle(),
		FrameRate: frames.Cycle(),
		TickAvg:   ticks.Average().Seconds(),
		FrameAvg:  frames.Average().Seconds(),
		Signal:    r.lastSignal,
	}
	r.samples = append(r.samples, s)
	if r.console != nil {
		r.console.PrintProgress(s, int(r.scenario.Duration.Duration().Seconds()))
	}
}

func summarize(l *loop.Loop, samples []Sample) Summary {
	ticks, frames := l.Ticks(), l.Frames()
	s := Summary{
		Seconds:     len(samples),
		TotalTicks:  ticks.Count(),
		TotalFrames: frames.Count(),
		TickAvg:     ticks.Average().Seconds(),
		FrameAvg:    frames.Average().Seconds(),
	}
	if s.Seconds > 0 {
		s.AvgTickRate = float64(s.TotalTicks) / float64(s.Seconds)
		s.AvgFrameRate = float64(s.TotalFrames) / float64(s.Seconds)
	}
	return s
}
