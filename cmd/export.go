package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridiron-tools/dfs-cli/internal/export"
	"github.com/gridiron-tools/dfs-cli/internal/season"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the latest files into one XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		org, err := initOrganizer()
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			params, err := initSeason()
			if err != nil {
				return err
			}
			out = fmt.Sprintf("DFS_Week_%d.xlsx", season.WeekFor(time.Now(), params))
		}

		sheets, err := export.WriteWorkbook(org, out)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d sheets to %s\n", sheets, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output workbook path (default DFS_Week_<n>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
