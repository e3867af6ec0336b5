package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report is the final benchmark report.
type Report struct {
	RunID     string    `json:"run_id"`
	Scenario  string    `json:"scenario"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	TickRate  float64   `json:"tick_rate"`
	Seed      int64     `json:"seed"`
	Summary   Summary   `json:"summary"`
	Timeline  []Sample  `json:"timeline,omitempty"`
}

// Sample is one per-second snapshot of loop statistics.
type Sample struct {
	Second    int     `json:"second"`
	TickRate  uint64  `json:"tick_rate"`
	FrameRate uint64  `json:"frame_rate"`
	TickAvg   float64 `json:"tick_seconds_avg"`
	FrameAvg  float64 `json:"frame_seconds_avg"`
	Signal    float64 `json:"signal"`
}

// Summary provides whole-run statistics.
type Summary struct {
	Seconds      int     `json:"seconds"`
	TotalTicks   uint64  `json:"total_ticks"`
	TotalFrames  uint64  `json:"total_frames"`
	AvgTickRate  float64 `json:"avg_tick_rate"`
	AvgFrameRate float64 `json:"avg_frame_rate"`
	TickAvg      float64 `json:"tick_seconds_avg"`
	FrameAvg     float64 `json:"frame_seconds_avg"`
}

// WriteJSON writes the report to a file.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
