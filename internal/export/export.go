// Package export writes the organized latest files into a single XLSX
// workbook for sharing outside of Google Sheets.
package export

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/fetcher"
	"github.com/gridiron-tools/dfs-cli/internal/organizer"
)

// WriteWorkbook collects every latest CSV under the organizer's base
// directory into one workbook, one sheet per slug, and saves it at
// outPath. It returns the number of sheets written.
func WriteWorkbook(org *organizer.Organizer, outPath string) (int, error) {
	latest := org.LatestBySlug()
	if len(latest) == 0 {
		return 0, eris.New("export: no latest files to export")
	}

	slugs := make([]string, 0, len(latest))
	for slug := range latest {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	file := xlsx.NewFile()
	for _, slug := range slugs {
		records, err := fetcher.ReadCSVFile(latest[slug])
		if err != nil {
			return 0, eris.Wrapf(err, "export: read %s", latest[slug])
		}

		sheet, err := file.AddSheet(slug)
		if err != nil {
			return 0, eris.Wrapf(err, "export: add sheet %s", slug)
		}
		for _, record := range records {
			row := sheet.AddRow()
			for _, value := range record {
				row.AddCell().SetString(value)
			}
		}
		zap.L().Debug("sheet written",
			zap.String("slug", slug),
			zap.Int("rows", len(records)))
	}

	if err := file.Save(outPath); err != nil {
		return 0, eris.Wrapf(err, "export: save %s", outPath)
	}
	return len(slugs), nil
}
