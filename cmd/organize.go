package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var organizeWindow int

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "File recent downloads into the project layout",
	Long:  "Scans the downloads folder for recent CSVs, classifies them, and moves them into per-source directories with refreshed latest pointers. Best-effort: always exits 0.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		org, err := initOrganizer()
		if err != nil {
			zap.L().Error("organize setup", zap.Error(err))
			return nil
		}

		window := time.Duration(organizeWindow) * time.Minute
		staged, err := org.Scan(window)
		if err != nil {
			zap.L().Error("scan downloads", zap.Error(err))
			return nil
		}
		if len(staged) == 0 {
			fmt.Println("No recent downloads found.")
			renderStatusTable(org)
			return nil
		}

		organized, errs := org.Organize(staged)
		for _, e := range errs {
			zap.L().Warn("organize", zap.Error(e))
		}

		if len(organized) > 0 {
			if _, err := org.WriteManifest(); err != nil {
				zap.L().Warn("write manifest", zap.Error(err))
			}
		}

		fmt.Printf("Organized %d of %d staged files.\n", len(organized), len(staged))
		renderStatusTable(org)
		return nil
	},
}

func init() {
	organizeCmd.Flags().IntVar(&organizeWindow, "window", 60, "how many minutes back to scan for downloads")
	rootCmd.AddCommand(organizeCmd)
}
