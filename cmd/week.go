package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gridiron-tools/dfs-cli/internal/season"
)

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print the inferred NFL week",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := initSeason()
		if err != nil {
			return err
		}

		now := time.Now()
		if weekDate != "" {
			now, err = time.Parse("2006-01-02", weekDate)
			if err != nil {
				return eris.Wrapf(err, "parse date %q", weekDate)
			}
		}

		fmt.Printf("Week %d of the %d season\n", season.WeekFor(now, params), params.Start.Year())
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "date to evaluate (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(weekCmd)
}
