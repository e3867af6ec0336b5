package bench

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// Console provides styled console output for benchmark runs.
type Console struct{}

// NewConsole creates a new console output handler.
func NewConsole() *Console {
	return &Console{}
}

// PrintHeader prints the benchmark header.
func (c *Console) PrintHeader(scenario *Scenario, seed int64) {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Println("BENCHMARK: " + scenario.Name)

	fmt.Println()

	// Configuration panel
	configPanel := pterm.DefaultBox.WithTitle("Configuration").WithTitleTopCenter()
	configContent := fmt.Sprintf(
		"Tick Rate: %.0f/s\nDuration: %s\nOscillators: %d\nSeed: %d",
		scenario.TickRate, scenario.Duration.Duration().String(), scenario.Workload.Size, seed,
	)
	if scenario.RenderLimit != "" {
		configContent += fmt.Sprintf("\nRender Limit: %s", scenario.RenderLimit)
	}
	configPanel.Println(configContent)
	fmt.Println()
}

// PrintProgress prints a progress update line.
func (c *Console) PrintProgress(s Sample, totalSeconds int) {
	status := fmt.Sprintf("[%3d/%ds] ticks: %d | frames: %d | tick avg: %s | frame avg: %s | signal: %+.3f",
		s.Second,
		totalSeconds,
		s.TickRate,
		s.FrameRate,
		formatSeconds(s.TickAvg),
		formatSeconds(s.FrameAvg),
		s.Signal)
	fmt.Printf("\r%-120s", status)
}

// ClearProgress clears the progress line.
func (c *Console) ClearProgress() {
	fmt.Printf("\r%120s\r", "")
}

// PrintResults prints the benchmark results.
func (c *Console) PrintResults(report *Report) {
	// Header
	pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightGreen, pterm.Bold)).
		Println("BENCHMARK RESULTS")

	fmt.Println()

	pterm.Info.Printfln("Run ID: %s", report.RunID)
	pterm.Info.Printfln("Wall time: %s", report.EndTime.Sub(report.StartTime).Round(time.Millisecond))
	fmt.Println()

	// Summary section
	summaryData := pterm.TableData{
		{"Metric", "Value"},
		{"Seconds", fmt.Sprintf("%d", report.Summary.Seconds)},
		{"Total Ticks", fmt.Sprintf("%d", report.Summary.TotalTicks)},
		{"Total Frames", fmt.Sprintf("%d", report.Summary.TotalFrames)},
		{"Avg Tick Rate", fmt.Sprintf("%.1f/s", report.Summary.AvgTickRate)},
		{"Avg Frame Rate", fmt.Sprintf("%.1f/s", report.Summary.AvgFrameRate)},
		{"Avg Tick Time", formatSeconds(report.Summary.TickAvg)},
		{"Avg Frame Time", formatSeconds(report.Summary.FrameAvg)},
	}

	pterm.DefaultSection.Println("Summary")
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(summaryData).Render()
	fmt.Println()
}

// PrintSuccess prints a success message.
func (c *Console) PrintSuccess(msg string) {
	fmt.Println()
	pterm.Success.Println(msg)
}

// PrintError prints an error message.
func (c *Console) PrintError(msg string) {
	pterm.Error.Println(msg)
}

// formatSeconds renders a float seconds value as a readable duration.
func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}
