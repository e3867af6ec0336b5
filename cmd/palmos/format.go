package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/PalmosProject/palmos/pkg/bench"
)

func outputJSON(report *bench.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func outputTable(report *bench.Report) error {
	if len(report.Timeline) == 0 {
		fmt.Println("No per-second samples recorded")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Append([]string{"Second", "Ticks", "Frames", "Tick Avg", "Frame Avg", "Signal"})

	for _, row := range timelineRows(report) {
		table.Append(row)
	}

	table.Render()
	return nil
}

func timelineRows(report *bench.Report) [][]string {
	rows := make([][]string, 0, len(report.Timeline))
	for _, s := range report.Timeline {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Second),
			fmt.Sprintf("%d", s.TickRate),
			fmt.Sprintf("%d", s.FrameRate),
			formatSeconds(s.TickAvg),
			formatSeconds(s.FrameAvg),
			fmt.Sprintf("%+.3f", s.Signal),
		})
	}
	return rows
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}
