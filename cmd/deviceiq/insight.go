package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deviceiq-labs/deviceiq/engine"
)

var (
	insightRole   string
	insightUserID int
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Role-specific insight report (individual, developer, telecom, researcher)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}

		var report interface{}
		switch insightRole {
		case "individual":
			if !cmd.Flags().Changed("user") {
				return fmt.Errorf("--user is required for the individual role")
			}
			report, err = engine.IndividualInsight(ds, insightUserID)
		case "developer":
			report, err = engine.DeveloperInsight(ds)
		case "telecom":
			report, err = engine.TelecomInsight(ds)
		case "researcher":
			report, err = engine.ResearcherInsight(ds)
		default:
			return fmt.Errorf("unknown role %q: want individual, developer, telecom or researcher", insightRole)
		}
		if err != nil {
			return err
		}
		return writeResult(report, nil)
	},
}

func init() {
	insightCmd.Flags().StringVar(&insightRole, "role", "", "consumer role (required)")
	insightCmd.Flags().IntVar(&insightUserID, "user", 0, "user id (individual role)")
	insightCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(insightCmd)
}
