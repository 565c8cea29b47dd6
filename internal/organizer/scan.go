package organizer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// Scan lists CSVs in the staging directory modified within maxAge of now,
// newest first, each already classified. It never recurses into
// subdirectories and never mutates the filesystem.
func (o *Organizer) Scan(maxAge time.Duration) ([]model.StagedFile, error) {
	entries, err := os.ReadDir(o.stagingDir)
	if err != nil {
		return nil, eris.Wrapf(err, "organizer: scan %s", o.stagingDir)
	}

	cutoff := time.Now().Add(-maxAge)

	var staged []model.StagedFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			zap.L().Warn("organizer: stat failed during scan",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			continue
		}
		if info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(o.stagingDir, entry.Name())
		category := Classify(entry.Name(), readContentSample(path))

		sf := model.StagedFile{
			Path:     path,
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Category: category,
		}
		if category == model.CategorySOS {
			sf.Position = ExtractPosition(entry.Name())
		}
		staged = append(staged, sf)
	}

	sort.Slice(staged, func(i, j int) bool {
		return staged[i].Modified.After(staged[j].Modified)
	})

	return staged, nil
}
