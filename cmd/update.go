package main

import (
	"github.com/spf13/cobra"

	"github.com/gridiron-tools/dfs-cli/internal/collect"
	"github.com/gridiron-tools/dfs-cli/internal/model"
)

var updateNoUpload bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh the quick-update sources",
	Long:  "Mid-week refresh: re-runs only the sources flagged quick_update (odds, projections), organizes, and uploads. Leaves everything else in place.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := collect.LoadRegistry(cfg.Sources.File)
		if err != nil {
			return err
		}
		return runWorkflow(cmd.Context(), model.RunKindUpdate, registry.QuickUpdate(), updateNoUpload)
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateNoUpload, "no-upload", false, "skip the Google Sheets upload")
	rootCmd.AddCommand(updateCmd)
}
