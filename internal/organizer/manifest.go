package organizer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// WriteManifest rebuilds the upload manifest from the current latest files
// on disk and writes it under the base directory, returning its path. The
// manifest always reflects ground truth, not the in-memory organize
// result, so it stays correct when invoked independently.
func (o *Organizer) WriteManifest() (string, error) {
	manifest := o.Manifest()

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "organizer: marshal manifest")
	}

	path := o.ManifestPath()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", eris.Wrapf(err, "organizer: write manifest %s", path)
	}
	return path, nil
}

// Manifest builds a manifest from the latest files currently on disk
// without writing anything.
func (o *Organizer) Manifest() model.Manifest {
	return model.Manifest{
		Timestamp: time.Now().Format(time.RFC3339),
		Files:     o.collectLatest(),
	}
}

// ReadManifest loads the manifest from disk.
func (o *Organizer) ReadManifest() (*model.Manifest, error) {
	data, err := os.ReadFile(o.ManifestPath())
	if err != nil {
		return nil, eris.Wrap(err, "organizer: read manifest")
	}
	var manifest model.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, eris.Wrap(err, "organizer: parse manifest")
	}
	return &manifest, nil
}

// collectLatest scans every category directory for *_latest.csv files.
// Positioned sos files (sos-qb_latest.csv etc.) each get their own entry.
func (o *Organizer) collectLatest() []model.ManifestEntry {
	entries := []model.ManifestEntry{}
	for _, category := range model.Categories {
		dir := o.CategoryDir(category)
		matches, err := filepath.Glob(filepath.Join(dir, "*_latest.csv"))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			entries = append(entries, model.ManifestEntry{
				Source:         category,
				Path:           path,
				Size:           info.Size(),
				Modified:       info.ModTime().Unix(),
				ReadyForUpload: true,
			})
		}
	}
	return entries
}

// LatestFile returns the path of a category's bare latest file if it
// exists on disk.
func (o *Organizer) LatestFile(category model.Category) (string, bool) {
	path := filepath.Join(o.CategoryDir(category), category.Slug()+"_latest.csv")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// LatestBySlug maps every latest file's slug (the filename minus the
// _latest.csv suffix) to its path, across all categories.
func (o *Organizer) LatestBySlug() map[string]string {
	latest := make(map[string]string)
	for _, entry := range o.collectLatest() {
		name := filepath.Base(entry.Path)
		slug := strings.TrimSuffix(name, "_latest.csv")
		latest[slug] = entry.Path
	}
	return latest
}
