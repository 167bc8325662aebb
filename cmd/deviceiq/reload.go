package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Re-read the data source and swap the cached snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDataFile()
		if err != nil {
			return err
		}
		ds, err := store.Reload(path)
		if err != nil {
			return err
		}
		fmt.Printf("Reloaded %s: %d records (snapshot %s)\n", path, ds.Len(), ds.SnapshotID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reloadCmd)
}
