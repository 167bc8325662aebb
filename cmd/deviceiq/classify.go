package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var (
	classifyAppUsage   float64
	classifyScreenTime float64
	classifySeed       int64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Heuristic behavior classification from app usage and screen time",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := classifySeed
		if !cmd.Flags().Changed("seed") {
			if cfg != nil && cfg.ClassifierSeed != 0 {
				seed = cfg.ClassifierSeed
			} else {
				seed = time.Now().UnixNano()
			}
		}
		rng := rand.New(rand.NewSource(seed))

		result := engine.Classify(classifyAppUsage, classifyScreenTime, rng)
		return writeResult(result, nil)
	},
}

func init() {
	classifyCmd.Flags().Float64Var(&classifyAppUsage, "app-usage", 0, "app usage time in minutes/day")
	classifyCmd.Flags().Float64Var(&classifyScreenTime, "screen-time", 0, "screen-on time in hours/day")
	classifyCmd.Flags().Int64Var(&classifySeed, "seed", 0, "random seed for the confidence distribution")
	rootCmd.AddCommand(classifyCmd)
}
