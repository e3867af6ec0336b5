package bench

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/PalmosProject/palmos/pkg/loop"
)

// Scenario defines a benchmark run: how fast the loop ticks, how long
// it runs, and how much synthetic work each callback burns.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Fixed tick rate in ticks per second.
	TickRate float64 `yaml:"tick_rate"`

	// How long the benchmark runs.
	Duration Duration `yaml:"duration"`

	// Render throttle: always, once, or never.
	RenderLimit string `yaml:"render_limit,omitempty"`

	// Random seed for reproducibility (0 = time-derived).
	Seed int64 `yaml:"seed,omitempty"`

	// Workload shape.
	Workload WorkloadConfig `yaml:"workload,omitempty"`

	// Report output file (JSON format)
	ReportFile string `yaml:"report_file,omitempty"`
}

// WorkloadConfig shapes the synthetic workload.
type WorkloadConfig struct {
	// Number of oscillators advanced per tick.
	Size int `yaml:"size,omitempty"`

	// Busy time burned per tick.
	UpdateCost Duration `yaml:"update_cost,omitempty"`

	// Random spread applied to update_cost (0-100).
	JitterPercent int `yaml:"jitter_percent,omitempty"`

	// Busy time burned per render.
	RenderCost Duration `yaml:"render_cost,omitempty"`
}

// Duration is a wrapper for time.Duration that supports YAML unmarshaling.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// DefaultScenario returns a runnable scenario with moderate load.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:        "default",
		Description: "60Hz loop with a light oscillator workload",
		TickRate:    60,
		Duration:    Duration(10 * time.Second),
		Workload: WorkloadConfig{
			Size:          64,
			UpdateCost:    Duration(2 * time.Millisecond),
			JitterPercent: 20,
			RenderCost:    Duration(time.Millisecond),
		},
	}
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	scenario.applyDefaults()

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func (s *Scenario) applyDefaults() {
	if s.Workload.Size == 0 {
		s.Workload.Size = 64
	}
}

// Validate checks that the scenario is well-formed.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive")
	}
	if s.Duration.Duration() <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if _, err := s.Limit(); err != nil {
		return err
	}
	if s.Workload.Size <= 0 {
		return fmt.Errorf("workload.size must be positive")
	}
	if s.Workload.JitterPercent < 0 || s.Workload.JitterPercent > 100 {
		return fmt.Errorf("workload.jitter_percent must be between 0 and 100")
	}
	if s.Workload.UpdateCost < 0 {
		return fmt.Errorf("workload.update_cost must be non-negative")
	}
	if s.Workload.RenderCost < 0 {
		return fmt.Errorf("workload.render_cost must be non-negative")
	}
	return nil
}

// Limit parses the scenario's render limit.
func (s *Scenario) Limit() (loop.Limit, error) {
	limit, err := loop.ParseLimit(s.RenderLimit)
	if err != nil {
		return loop.LimitAlways, fmt.Errorf("invalid render_limit: %w", err)
	}
	return limit, nil
}
