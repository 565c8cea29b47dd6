package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Clear project CSVs for a new week",
	Long:  "Deletes every organized CSV, including latest pointers, so the next collect starts from a clean slate. The manifest is left in place until the next organize.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		org, err := initOrganizer()
		if err != nil {
			return err
		}

		cleared, errs := org.ClearOld()
		for _, e := range errs {
			zap.L().Warn("cleanup", zap.Error(e))
		}
		fmt.Printf("Cleared %d files.\n", cleared)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
