package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregated statistics over the whole dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		report, err := engine.AggregateStats(ds)
		if err != nil {
			return err
		}
		return writeResult(report, func(w io.Writer) error {
			fmt.Fprintf(w, "Users: %d\n", report.TotalUsers)
			fmt.Fprintf(w, "Avg app usage: %.1f min/day\n", report.AvgAppUsage)
			fmt.Fprintf(w, "Avg screen time: %.1f h/day\n", report.AvgScreenTime)
			fmt.Fprintf(w, "Avg battery drain: %.0f mAh/day\n", report.AvgBatteryDrain)
			fmt.Fprintf(w, "Avg data usage: %.0f MB/day\n", report.AvgDataUsage)
			fmt.Fprintf(w, "Avg apps installed: %.1f\n", report.AvgAppsInstalled)
			fmt.Fprintln(w, "Behavior classes:")
			for _, vc := range report.BehaviorCounts {
				fmt.Fprintf(w, "  class %s: %d\n", vc.Value, vc.Count)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
