package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/PalmosProject/palmos/pkg/bench"
	"github.com/PalmosProject/palmos/pkg/loop"
)

var (
	seed        int64
	reportPath  string
	runBaseDir  string
	metricsAddr string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a benchmark scenario",
	Long: `Run a benchmark scenario from a YAML file.

The scenario defines the tick rate, run duration, and the synthetic
workload burned per tick. Artifacts (scenario copy, run log, JSON
report) land in a timestamped run directory.

Examples:
  # Run a scenario
  palmos run scenarios/60hz.yaml

  # Run with reproducible randomness
  palmos run scenarios/60hz.yaml --seed 12345

  # Serve Prometheus metrics while the loop runs
  palmos run scenarios/60hz.yaml --metrics-addr :9090`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible runs (0 = scenario seed, or derived)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "Extra path to write the JSON report to")
	runCmd.Flags().StringVar(&runBaseDir, "run-dir", "", "Base directory for run artifacts (default ./bench-runs)")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
}

func runScenario(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	if outputFormat != "table" && outputFormat != "json" {
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	scenario, err := bench.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if seed != 0 {
		scenario.Seed = seed
		logger.Info("using seed", slog.Int64("seed", seed))
	}

	logger.Info("loaded scenario",
		slog.String("name", scenario.Name),
		slog.String("description", scenario.Description),
	)

	runDir, err := bench.NewRunDir(runBaseDir, scenario)
	if err != nil {
		return err
	}
	defer runDir.Close()

	runLogger, err := runDir.CreateLogger()
	if err != nil {
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

	opts := []bench.RunnerOption{
		bench.WithLogger(runLogger),
	}

	var console *bench.Console
	if outputFormat == "table" {
		console = bench.NewConsole()
		opts = append(opts, bench.WithConsole(console))
	}

	if metricsAddr != "" {
		metrics := loop.NewMetrics()
		registry := prometheus.NewRegistry()
		registry.MustRegister(metrics)
		opts = append(opts, bench.WithMetrics(metrics))

		server := &http.Server{
			Addr:    metricsAddr,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", slog.String("error", err.Error()))
			}
		}()
		defer server.Close()

		logger.Info("serving metrics", slog.String("addr", metricsAddr))
	}

	runner := bench.NewRunner(scenario, opts...)
	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := report.WriteJSON(runDir.ReportPath()); err != nil {
		return err
	}
	extra := reportPath
	if extra == "" {
		extra = scenario.ReportFile
	}
	if extra != "" {
		if err := report.WriteJSON(extra); err != nil {
			return err
		}
	}

	if outputFormat == "json" {
		return outputJSON(report)
	}

	console.PrintResults(report)
	if err := outputTable(report); err != nil {
		return err
	}
	console.PrintSuccess(fmt.Sprintf("Report written to %s", runDir.ReportPath()))
	return nil
}
