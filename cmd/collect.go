package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/collect"
	"github.com/gridiron-tools/dfs-cli/internal/model"
)

var collectNoUpload bool

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the full weekly collection",
	Long:  "Clears last week's files, runs every enabled source, organizes fresh downloads, and uploads the latest files to Google Sheets.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := collect.LoadRegistry(cfg.Sources.File)
		if err != nil {
			return err
		}
		return runWorkflow(cmd.Context(), model.RunKindCollect, registry.Enabled(), collectNoUpload)
	},
}

func init() {
	collectCmd.Flags().BoolVar(&collectNoUpload, "no-upload", false, "skip the Google Sheets upload")
	rootCmd.AddCommand(collectCmd)
}

// runWorkflow is the shared collect/update flow: cleanup, collect,
// organize, optional upload, summary, run record. Individual source
// failures never abort the run.
func runWorkflow(ctx context.Context, kind model.RunKind, names []string, noUpload bool) error {
	org, err := initOrganizer()
	if err != nil {
		return err
	}

	// Run history is best-effort: a broken store never blocks collection.
	st, err := initStore(ctx)
	if err != nil {
		zap.L().Warn("run history unavailable", zap.Error(err))
		st = nil
	} else {
		defer st.Close() //nolint:errcheck
	}
	var run *model.Run
	if st != nil {
		if run, err = st.CreateRun(ctx, kind); err != nil {
			zap.L().Warn("record run start", zap.Error(err))
			run = nil
		}
	}

	if kind == model.RunKindCollect {
		cleared, errs := org.ClearOld()
		for _, e := range errs {
			zap.L().Warn("cleanup", zap.Error(e))
		}
		fmt.Printf("Cleared %d old files.\n", cleared)
	}

	deps, err := initDeps(org)
	if err != nil {
		return err
	}
	sources := collect.BuildSources(names, deps)
	results := collect.NewRunner().Run(ctx, sources)

	staged, err := org.Scan(cfg.Downloads.ScanWindow())
	if err != nil {
		return err
	}
	organized, orgErrs := org.Organize(staged)
	for _, e := range orgErrs {
		zap.L().Warn("organize", zap.Error(e))
	}
	if _, err := org.WriteManifest(); err != nil {
		zap.L().Warn("write manifest", zap.Error(err))
	}

	uploaded := false
	if noUpload {
		fmt.Println("Upload skipped (--no-upload).")
	} else {
		up, err := initUploader(ctx, org)
		if err != nil {
			zap.L().Warn("upload unavailable", zap.Error(err))
			fmt.Println("Upload skipped: " + err.Error())
		} else {
			for _, ok := range up.UploadAll(ctx) {
				if ok {
					uploaded = true
				}
			}
		}
	}

	printSummary(results, len(organized), uploaded)

	if st != nil && run != nil {
		run.Status = overallStatus(results)
		run.Sources = results
		run.FilesMoved = len(organized)
		run.Uploaded = uploaded
		if err := st.CompleteRun(ctx, run); err != nil {
			zap.L().Warn("record run completion", zap.Error(err))
		}
	}
	return nil
}

func overallStatus(results []model.SourceResult) model.RunStatus {
	ok := 0
	for _, r := range results {
		if r.OK {
			ok++
		}
	}
	switch {
	case len(results) == 0 || ok == 0:
		return model.RunStatusFailed
	case ok == len(results):
		return model.RunStatusSucceeded
	default:
		return model.RunStatusPartial
	}
}

func printSummary(results []model.SourceResult, moved int, uploaded bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Source", "Result", "Detail"})
	for _, r := range results {
		result := "ok"
		if !r.OK {
			result = "failed"
		}
		t.AppendRow(table.Row{r.Name, result, r.Error})
	}
	t.Render()

	fmt.Printf("Files organized: %d  Uploaded: %v\n", moved, uploaded)
}
