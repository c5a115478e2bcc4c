package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/frrlint/frrlint/pkg/audit"
	"github.com/frrlint/frrlint/pkg/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past analysis and validation runs",
	Long: `View the run history recorded by analyze and validate.

Each run is logged with its timestamp, command, input files, and
finding counts.

Examples:
  frrlint history list
  frrlint history list --last 24h
  frrlint history list --command validate --failures`,
}

var (
	historyCommand  string
	historyLast     string
	historyLimit    int
	historyFailures bool
)

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := audit.Filter{
			Command:      historyCommand,
			Limit:        historyLimit,
			FailuresOnly: historyFailures,
		}

		// Parse --last duration
		if historyLast != "" {
			duration, err := time.ParseDuration(historyLast)
			if err != nil {
				return fmt.Errorf("invalid duration: %s", historyLast)
			}
			filter.StartTime = time.Now().Add(-duration)
		}

		events, err := audit.Query(historyPath(), filter)
		if err != nil {
			return fmt.Errorf("querying run history: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(events)
		}

		if len(events) == 0 {
			fmt.Println("No recorded runs found")
			return nil
		}

		t := cli.NewTable("TIMESTAMP", "COMMAND", "FILES", "ERRORS", "WARNINGS", "STATUS")
		for _, event := range events {
			status := green("pass")
			if !event.Passed {
				status = red("fail")
			}
			t.Row(
				event.Timestamp.Format("2006-01-02 15:04:05"),
				event.Command,
				strings.Join(event.Files, ", "),
				fmt.Sprintf("%d", event.Errors),
				fmt.Sprintf("%d", event.Warnings),
				status,
			)
		}
		t.Flush()

		return nil
	},
}

func init() {
	historyListCmd.Flags().StringVar(&historyCommand, "command", "", "Filter by command (analyze, validate)")
	historyListCmd.Flags().StringVar(&historyLast, "last", "", "Show runs from last duration (e.g., 24h)")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 100, "Maximum runs to show")
	historyListCmd.Flags().BoolVar(&historyFailures, "failures", false, "Show only failed runs")

	historyCmd.AddCommand(historyListCmd)
}
