package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the organized file inventory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		org, err := initOrganizer()
		if err != nil {
			return err
		}

		renderStatusTable(org)

		if !org.HasManifest() {
			fmt.Println("No upload manifest yet.")
			return nil
		}
		manifest, err := org.ReadManifest()
		if err != nil {
			return err
		}
		fmt.Printf("Manifest: %d files, written %s\n", len(manifest.Files), manifest.Timestamp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
