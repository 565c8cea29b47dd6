package main

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload the latest files to Google Sheets",
	Long:  "Pushes each source's latest CSV into its mapped worksheet tab. Fails fast when the sheet id or credentials are not configured.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		org, err := initOrganizer()
		if err != nil {
			return err
		}
		up, err := initUploader(cmd.Context(), org)
		if err != nil {
			return err
		}

		available := up.AvailableFiles()
		if len(available) == 0 {
			return eris.New("nothing to upload; run collect or organize first")
		}

		results := up.UploadAll(cmd.Context())
		sources := make([]string, 0, len(results))
		for source := range results {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		failed := 0
		for _, source := range sources {
			if results[source] {
				fmt.Printf("  %s: uploaded\n", source)
			} else {
				fmt.Printf("  %s: FAILED\n", source)
				failed++
			}
		}
		if failed > 0 {
			return eris.Errorf("%d of %d uploads failed", failed, len(results))
		}
		fmt.Printf("Uploaded %d tabs.\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
