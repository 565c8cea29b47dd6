// Package uploader pushes the latest organized CSVs to Google Sheets, one
// worksheet tab per source.
package uploader

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gridiron-tools/dfs-cli/internal/fetcher"
	"github.com/gridiron-tools/dfs-cli/internal/model"
	"github.com/gridiron-tools/dfs-cli/internal/organizer"
	"github.com/gridiron-tools/dfs-cli/pkg/sheets"
)

// maxConcurrentUploads bounds parallel tab writes. The Sheets API throttles
// aggressively above a few requests per second.
const maxConcurrentUploads = 3

// DefaultTabMappings maps each uploadable category to its worksheet tab.
func DefaultTabMappings() map[string]string {
	return map[string]string{
		string(model.CategoryProjections): "Projections",
		string(model.CategoryDraftKings):  "Salaries",
		string(model.CategoryOdds):        "Odds",
	}
}

// Uploader uploads latest files to a spreadsheet.
type Uploader struct {
	client   sheets.Client
	org      *organizer.Organizer
	mappings map[string]string
}

// New creates an Uploader. Empty mappings fall back to DefaultTabMappings.
func New(client sheets.Client, org *organizer.Organizer, mappings map[string]string) *Uploader {
	if len(mappings) == 0 {
		mappings = DefaultTabMappings()
	}
	return &Uploader{
		client:   client,
		org:      org,
		mappings: mappings,
	}
}

// AvailableFiles returns source → latest-file path for every mapped source
// whose latest file exists on disk.
func (u *Uploader) AvailableFiles() map[string]string {
	files := make(map[string]string)
	for source := range u.mappings {
		cat := model.Category(source)
		if !model.ValidCategory(cat) {
			zap.L().Warn("tab mapping references unknown source", zap.String("source", source))
			continue
		}
		if path, ok := u.org.LatestFile(cat); ok {
			files[source] = path
		}
	}
	return files
}

// UploadAll uploads every available latest file to its tab. Tabs are
// independent: one failure never blocks the others. The returned map holds
// the per-source outcome.
func (u *Uploader) UploadAll(ctx context.Context) map[string]bool {
	files := u.AvailableFiles()
	results := make(map[string]bool, len(files))
	if len(files) == 0 {
		zap.L().Warn("no latest files found to upload")
		return results
	}

	sources := make([]string, 0, len(files))
	for source := range files {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)

	for _, source := range sources {
		path := files[source]
		tab := u.mappings[source]
		g.Go(func() error {
			err := u.uploadOne(ctx, path, tab)
			if err != nil {
				zap.L().Error("upload failed",
					zap.String("source", source),
					zap.String("tab", tab),
					zap.Error(err),
				)
			}
			mu.Lock()
			results[source] = err == nil
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (u *Uploader) uploadOne(ctx context.Context, path, tab string) error {
	records, err := fetcher.ReadCSVFile(path)
	if err != nil {
		return err
	}
	records = Sanitize(records)
	if len(records) == 0 {
		zap.L().Info("skipping empty file", zap.String("path", path), zap.String("tab", tab))
		return nil
	}

	if err := u.client.EnsureWorksheet(ctx, tab); err != nil {
		return err
	}
	if err := u.client.ClearWorksheet(ctx, tab); err != nil {
		return err
	}
	if err := u.client.UpdateValues(ctx, tab, records); err != nil {
		return err
	}

	zap.L().Info("uploaded",
		zap.String("tab", tab),
		zap.String("path", path),
		zap.Int("rows", len(records)),
	)
	return nil
}

// Sanitize prepares CSV records for the spreadsheet: NaN and infinity
// markers become empty cells and every row is padded to the widest row's
// length.
func Sanitize(records [][]string) [][]string {
	width := 0
	for _, row := range records {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]string, len(records))
	for i, row := range records {
		clean := make([]string, width)
		for j, cell := range row {
			if isNonFinite(cell) {
				cell = ""
			}
			clean[j] = cell
		}
		out[i] = clean
	}
	return out
}

func isNonFinite(cell string) bool {
	switch strings.ToLower(cell) {
	case "nan", "inf", "+inf", "-inf", "infinity", "+infinity", "-infinity":
		return true
	}
	return false
}
