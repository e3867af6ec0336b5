package bench

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testScenario() *Scenario {
	return &Scenario{
		Name:     "unit",
		TickRate: 200,
		Duration: Duration(100 * time.Millisecond),
		Seed:     42,
		Workload: WorkloadConfig{Size: 8},
	}
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner(testScenario(), WithLogger(testLogger))
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.RunID == "" {
		t.Error("report missing run ID")
	}
	if report.Scenario != "unit" {
		t.Errorf("Scenario = %v, want unit", report.Scenario)
	}
	if report.Seed != 42 {
		t.Errorf("Seed = %v, want 42", report.Seed)
	}
	if report.TickRate != 200 {
		t.Errorf("TickRate = %v, want 200", report.TickRate)
	}
	if ticks := report.Summary.TotalTicks; ticks < 10 || ticks > 40 {
		t.Errorf("TotalTicks = %v, want roughly 20 for 100ms at 200Hz", ticks)
	}
	if report.Summary.TotalFrames == 0 {
		t.Error("no frames recorded")
	}
	if report.EndTime.Before(report.StartTime) {
		t.Error("EndTime precedes StartTime")
	}
}

func TestRunner_DerivesSeed(t *testing.T) {
	s := testScenario()
	s.Seed = 0
	s.Duration = Duration(20 * time.Millisecond)
	r := NewRunner(s, WithLogger(testLogger))

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Seed == 0 {
		t.Error("Run() did not derive a seed")
	}
}

func TestRunner_CollectsSamples(t *testing.T) {
	s := testScenario()
	s.Duration = Duration(1500 * time.Millisecond)
	r := NewRunner(s, WithLogger(testLogger))

	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Timeline) != 1 {
		t.Fatalf("Timeline length = %d, want 1", len(report.Timeline))
	}
	sample := report.Timeline[0]
	if sample.Second != 1 {
		t.Errorf("Second = %d, want 1", sample.Second)
	}
	if sample.TickRate < 150 || sample.TickRate > 300 {
		t.Errorf("TickRate = %d, want about 200", sample.TickRate)
	}
	if sample.Signal < -1 || sample.Signal > 1 {
		t.Errorf("Signal = %v, want within [-1, 1]", sample.Signal)
	}
	if report.Summary.Seconds != 1 {
		t.Errorf("Summary.Seconds = %d, want 1", report.Summary.Seconds)
	}
}

func TestRunner_InvalidLimit(t *testing.T) {
	s := testScenario()
	s.RenderLimit = "warp"
	r := NewRunner(s, WithLogger(testLogger))

	if _, err := r.Run(context.Background()); err == nil {
		t.Error("Run() expected error for unknown render limit")
	}
}

func TestRunner_ContextCancelled(t *testing.T) {
	s := testScenario()
	s.Duration = Duration(10 * time.Second)
	r := NewRunner(s, WithLogger(testLogger))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
}
