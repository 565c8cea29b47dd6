package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gridiron-tools/dfs-cli/internal/browser"
	"github.com/gridiron-tools/dfs-cli/internal/collect"
	"github.com/gridiron-tools/dfs-cli/internal/fetcher"
	"github.com/gridiron-tools/dfs-cli/internal/organizer"
	"github.com/gridiron-tools/dfs-cli/internal/season"
	"github.com/gridiron-tools/dfs-cli/internal/store"
	"github.com/gridiron-tools/dfs-cli/internal/uploader"
	"github.com/gridiron-tools/dfs-cli/pkg/draftkings"
	"github.com/gridiron-tools/dfs-cli/pkg/rotowire"
	"github.com/gridiron-tools/dfs-cli/pkg/sheets"
)

var titleCaser = cases.Title(language.English)

func initOrganizer() (*organizer.Organizer, error) {
	staging, err := cfg.Downloads.StagingPath()
	if err != nil {
		return nil, err
	}
	org := organizer.New(staging, cfg.Downloads.BaseDir)
	if err := org.EnsureDirs(); err != nil {
		return nil, err
	}
	return org, nil
}

func initSeason() (season.Params, error) {
	start, err := cfg.Season.StartDate()
	if err != nil {
		return season.Params{}, err
	}
	return season.Params{Start: start, Weeks: cfg.Season.Weeks}, nil
}

func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func initDeps(org *organizer.Organizer) (collect.Deps, error) {
	params, err := initSeason()
	if err != nil {
		return collect.Deps{}, err
	}

	httpFetcher := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{})
	return collect.Deps{
		DraftKings: draftkings.NewClient(),
		Rotowire:   rotowire.NewClient(httpFetcher),
		Launcher:   browser.ExecLauncher{},
		Confirmer:  browser.StdioConfirmer{In: os.Stdin, Out: os.Stdout},
		StagingDir: org.StagingDir(),
		Season:     params,
	}, nil
}

func initUploader(ctx context.Context, org *organizer.Organizer) (*uploader.Uploader, error) {
	if err := cfg.Sheets.Validate(); err != nil {
		return nil, err
	}
	client, err := sheets.NewClient(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SheetID)
	if err != nil {
		return nil, eris.Wrap(err, "init sheets client")
	}
	return uploader.New(client, org, cfg.Sheets.TabMappings), nil
}

// renderStatusTable prints the per-category file inventory.
func renderStatusTable(org *organizer.Organizer) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Source", "Latest File", "Size", "Updated", "Files"})

	for _, s := range org.Status() {
		name := titleCaser.String(s.Category.DisplayName())
		if !s.HasLatest {
			t.AppendRow(table.Row{name, "-", "-", "-", s.TotalFiles})
			continue
		}
		t.AppendRow(table.Row{
			name,
			s.LatestName,
			formatSize(s.LatestSize),
			s.UpdatedAt.Format("2006-01-02 15:04"),
			s.TotalFiles,
		})
	}
	t.Render()
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
