package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PalmosProject/palmos/pkg/bench"
)

var (
	demoRate     float64
	demoDuration time.Duration
	demoLimit    string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a live oscillator loop on the system clock",
	Long: `Run the built-in oscillator workload in real time and print per-second
loop statistics. The loop spins uncapped between ticks, so expect one
busy core. Press Ctrl+C to stop early.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Float64Var(&demoRate, "rate", 60, "Tick rate in ticks per second")
	demoCmd.Flags().DurationVar(&demoDuration, "duration", 10*time.Second, "How long to run")
	demoCmd.Flags().StringVar(&demoLimit, "limit", "once", "Render limit (always, once, never)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	scenario := &bench.Scenario{
		Name:        "demo",
		Description: "Built-in oscillator demo",
		TickRate:    demoRate,
		Duration:    bench.Duration(demoDuration),
		RenderLimit: demoLimit,
		Workload: bench.WorkloadConfig{
			Size:          16,
			UpdateCost:    bench.Duration(time.Millisecond),
			JitterPercent: 25,
		},
	}
	if err := scenario.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received interrupt, shutting down...")
		cancel()
	}()

	console := bench.NewConsole()
	runner := bench.NewRunner(scenario,
		bench.WithLogger(logger),
		bench.WithConsole(console),
	)

	report, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			console.PrintSuccess("Demo stopped")
			return nil
		}
		return err
	}

	console.PrintResults(report)
	return nil
}
