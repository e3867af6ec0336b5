package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PalmosProject/palmos/pkg/bench"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>",
	Short: "Validate a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  validateScenario,
}

func validateScenario(cmd *cobra.Command, args []string) error {
	console := bench.NewConsole()

	scenario, err := bench.LoadScenario(args[0])
	if err != nil {
		console.PrintError(err.Error())
		return err
	}

	fmt.Printf("Scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("Description: %s\n", scenario.Description)
	}
	fmt.Printf("Tick Rate: %.0f/s\n", scenario.TickRate)
	fmt.Printf("Duration: %s\n", scenario.Duration.Duration())
	fmt.Printf("Workload: %d oscillators, %s per tick\n",
		scenario.Workload.Size, scenario.Workload.UpdateCost.Duration())
	if scenario.RenderLimit != "" {
		fmt.Printf("Render Limit: %s\n", scenario.RenderLimit)
	}

	console.PrintSuccess("Scenario is valid")
	return nil
}
