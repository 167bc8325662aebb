package main

import (
	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var (
	predictApps int
	predictAge  int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast usage metrics for a hypothetical user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		prediction, err := engine.PredictUsage(ds, predictApps, predictAge)
		if err != nil {
			return err
		}
		return writeResult(prediction, nil)
	},
}

func init() {
	predictCmd.Flags().IntVar(&predictApps, "apps", 50, "number of apps installed")
	predictCmd.Flags().IntVar(&predictAge, "age", 30, "user age")
	rootCmd.AddCommand(predictCmd)
}
