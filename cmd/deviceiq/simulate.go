package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var (
	simUserID    int
	simAppsDelta int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "What-if projection for one user under an apps-installed delta",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		result, err := engine.Project(ds, simUserID, simAppsDelta)
		if err != nil {
			return err
		}
		return writeResult(result, func(w io.Writer) error {
			fmt.Fprintf(w, "User %d, apps delta %+d:\n", simUserID, simAppsDelta)
			fmt.Fprintf(w, "  behavior class: %d -> %d\n", result.Original.BehaviorClass, result.Predicted.BehaviorClass)
			fmt.Fprintf(w, "  screen time:    %.2f -> %.2f h/day\n", result.Original.ScreenTime, result.Predicted.ScreenTime)
			fmt.Fprintf(w, "  battery drain:  %.0f -> %.0f mAh/day\n", result.Original.BatteryDrain, result.Predicted.BatteryDrain)
			fmt.Fprintf(w, "  data usage:     %.0f -> %.0f MB/day\n", result.Original.DataUsage, result.Predicted.DataUsage)
			return nil
		})
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simUserID, "user", 0, "base user id (required)")
	simulateCmd.Flags().IntVar(&simAppsDelta, "apps-delta", 0, "signed change to number of apps installed")
	simulateCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(simulateCmd)
}
