package organizer

import (
	"os"
	"path/filepath"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// Status reports each category's on-disk state for display: the bare
// latest file (if any), its age and size, and the total CSV count.
func (o *Organizer) Status() []model.CategoryStatus {
	var statuses []model.CategoryStatus
	for _, category := range model.Categories {
		dir := o.CategoryDir(category)
		status := model.CategoryStatus{Category: category}

		if matches, err := filepath.Glob(filepath.Join(dir, "*.csv")); err == nil {
			status.TotalFiles = len(matches)
		}

		latest := filepath.Join(dir, category.Slug()+"_latest.csv")
		if info, err := os.Stat(latest); err == nil && !info.IsDir() {
			status.HasLatest = true
			status.LatestName = filepath.Base(latest)
			status.LatestSize = info.Size()
			status.UpdatedAt = info.ModTime()
		}

		statuses = append(statuses, status)
	}
	return statuses
}

// HasManifest reports whether an upload manifest exists on disk.
func (o *Organizer) HasManifest() bool {
	info, err := os.Stat(o.ManifestPath())
	return err == nil && !info.IsDir()
}
