package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRunDir(t *testing.T) {
	scenario := DefaultScenario()

	rd, err := NewRunDir(t.TempDir(), scenario)
	if err != nil {
		t.Fatalf("NewRunDir() error = %v", err)
	}
	defer rd.Close()

	info, err := os.Stat(rd.Dir())
	if err != nil {
		t.Fatalf("run directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("run directory is not a directory")
	}

	loaded, err := LoadScenario(rd.ScenarioPath())
	if err != nil {
		t.Fatalf("saved scenario does not load: %v", err)
	}
	if loaded.Name != scenario.Name {
		t.Errorf("saved scenario name = %v, want %v", loaded.Name, scenario.Name)
	}
	if loaded.TickRate != scenario.TickRate {
		t.Errorf("saved scenario tick_rate = %v, want %v", loaded.TickRate, scenario.TickRate)
	}

	if got := rd.ReportPath(); filepath.Dir(got) != rd.Dir() {
		t.Errorf("ReportPath() = %v, want file inside %v", got, rd.Dir())
	}
}

func TestNewRunDir_NoScenario(t *testing.T) {
	rd, err := NewRunDir(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewRunDir() error = %v", err)
	}
	defer rd.Close()

	if _, err := os.Stat(rd.ScenarioPath()); !os.IsNotExist(err) {
		t.Errorf("scenario.yaml should not exist, stat error = %v", err)
	}
}

func TestRunDir_Logger(t *testing.T) {
	rd, err := NewRunDir(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewRunDir() error = %v", err)
	}

	logger, err := rd.CreateLogger()
	if err != nil {
		t.Fatalf("CreateLogger() error = %v", err)
	}
	logger.Info("hello from the run")

	if err := rd.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(rd.LogPath())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the run") {
		t.Errorf("run log missing entry, got %q", string(data))
	}

	if err := rd.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
