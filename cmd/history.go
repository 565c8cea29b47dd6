package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/gridiron-tools/dfs-cli/internal/model"
	"github.com/gridiron-tools/dfs-cli/internal/store"
)

var (
	historyLimit  int
	historyKind   string
	historyStatus string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent collection runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Kind:   model.RunKind(historyKind),
			Status: model.RunStatus(historyStatus),
			Limit:  historyLimit,
		})
		if err != nil {
			return eris.Wrap(err, "history")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs recorded.")
			return nil
		}

		formatRunList(os.Stdout, runs)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "max number of runs to display")
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "filter by run kind (collect, update, organize)")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "filter by status (running, succeeded, partial, failed)")
	rootCmd.AddCommand(historyCmd)
}

// formatRunList writes a tabular list of runs to w.
func formatRunList(out io.Writer, runs []model.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tKIND\tSTATUS\tSOURCES\tMOVED\tUPLOADED\tSTARTED\tDURATION")

	for _, r := range runs {
		ok := 0
		for _, s := range r.Sources {
			if s.OK {
				ok++
			}
		}

		duration := "-"
		if r.CompletedAt != nil {
			duration = r.CompletedAt.Sub(r.StartedAt).Round(time.Second).String()
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%d\t%v\t%s\t%s\n",
			truncateID(r.ID),
			r.Kind,
			r.Status,
			ok, len(r.Sources),
			r.FilesMoved,
			r.Uploaded,
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			duration,
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
