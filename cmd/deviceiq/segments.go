package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var segmentBy string

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Per-segment summaries, by behavior class or age band",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}

		switch segmentBy {
		case "class":
			segments, err := engine.ClassSegments(ds)
			if err != nil {
				return err
			}
			return writeResult(segments, func(w io.Writer) error {
				for _, s := range segments {
					fmt.Fprintf(w, "class %d: %d users, %.1f min/day app usage, dominant OS %s\n",
						s.Class, s.Count, s.AvgAppUsage, s.DominantOS)
				}
				return nil
			})
		case "age":
			bands := engine.AgeBands(ds)
			return writeResult(bands, func(w io.Writer) error {
				for _, b := range bands {
					fmt.Fprintf(w, "%s: %d\n", b.Band, b.Count)
				}
				return nil
			})
		default:
			return fmt.Errorf("unknown segmentation %q: want class or age", segmentBy)
		}
	},
}

func init() {
	segmentsCmd.Flags().StringVar(&segmentBy, "by", "class", "segmentation: class or age")
	rootCmd.AddCommand(segmentsCmd)
}
