package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RunDir manages the directory structure for a benchmark run.
// All artifacts (log, report, scenario copy) are stored in a single
// timestamped directory.
type RunDir struct {
	dir     string
	logFile *os.File
}

// NewRunDir creates a new run directory with a timestamped subdirectory.
// The directory structure is:
//
//	{baseDir}/{timestamp}/
//	├── scenario.yaml   # Copy of input scenario
//	├── report.json     # JSON report
//	└── run.log         # Loop log
func NewRunDir(baseDir string, scenario *Scenario) (*RunDir, error) {
	if baseDir == "" {
		baseDir = "./bench-runs"
	}

	// Include nanoseconds to avoid collisions when starting multiple runs quickly
	timestamp := time.Now().Format("2006-01-02_15-04-05.000000000")
	runDir := filepath.Join(baseDir, timestamp)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	rd := &RunDir{dir: runDir}

	if scenario != nil {
		if err := rd.saveScenario(scenario); err != nil {
			return nil, fmt.Errorf("failed to save scenario: %w", err)
		}
	}

	return rd, nil
}

// Dir returns the run directory path.
func (rd *RunDir) Dir() string {
	return rd.dir
}

// ReportPath returns the path for the JSON report.
func (rd *RunDir) ReportPath() string {
	return filepath.Join(rd.dir, "report.json")
}

// LogPath returns the path for the run log.
func (rd *RunDir) LogPath() string {
	return filepath.Join(rd.dir, "run.log")
}

// ScenarioPath returns the path to the saved scenario.
func (rd *RunDir) ScenarioPath() string {
	return filepath.Join(rd.dir, "scenario.yaml")
}

func (rd *RunDir) saveScenario(scenario *Scenario) error {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return err
	}
	return os.WriteFile(rd.ScenarioPath(), data, 0644)
}

// CreateLogger creates a logger that writes to the run log file.
func (rd *RunDir) CreateLogger() (*slog.Logger, error) {
	f, err := os.Create(rd.LogPath())
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}
	rd.logFile = f

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler), nil
}

// Close closes the run log file if one was created.
func (rd *RunDir) Close() error {
	if rd.logFile == nil {
		return nil
	}

	var errs []error
	if err := rd.logFile.Sync(); err != nil {
		errs = append(errs, fmt.Errorf("sync run log: %w", err))
	}
	if err := rd.logFile.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close run log: %w", err))
	}
	rd.logFile = nil
	return errors.Join(errs...)
}
