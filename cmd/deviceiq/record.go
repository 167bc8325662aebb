package main

import (
	"github.com/spf13/cobra"
)

var recordUserID int

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Look up one record by user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		rec, err := ds.Record(recordUserID)
		if err != nil {
			return err
		}
		return writeResult(rec, nil)
	},
}

func init() {
	recordCmd.Flags().IntVar(&recordUserID, "user", 0, "user id (required)")
	recordCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(recordCmd)
}
