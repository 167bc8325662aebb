package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var distField string

var distributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Value counts for a discrete field (device_model, operating_system, gender, behavior_class)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		dist, err := engine.Distribution(ds, distField)
		if err != nil {
			return err
		}
		return writeResult(dist, func(w io.Writer) error {
			for _, vc := range dist {
				fmt.Fprintf(w, "%s: %d\n", vc.Value, vc.Count)
			}
			return nil
		})
	},
}

func init() {
	distributionCmd.Flags().StringVar(&distField, "field", "device_model", "field to count")
	rootCmd.AddCommand(distributionCmd)
}
