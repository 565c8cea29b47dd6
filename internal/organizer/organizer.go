// Package organizer routes staged CSV downloads into the per-category
// project layout and maintains the upload manifest.
package organizer

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

const (
	// ManifestName is the manifest file written under the base dir.
	ManifestName = "upload_manifest.json"
	// timestampFormat names timestamped copies at minute resolution.
	timestampFormat = "20060102_1504"
)

// Organizer moves recently downloaded CSVs from the staging directory into
// categorized project storage. All operations are single-threaded and
// best-effort: filesystem errors are collected, never fatal.
type Organizer struct {
	stagingDir string
	baseDir    string
}

// New returns an Organizer polling stagingDir and writing under baseDir.
func New(stagingDir, baseDir string) *Organizer {
	return &Organizer{stagingDir: stagingDir, baseDir: baseDir}
}

// BaseDir returns the organized downloads root.
func (o *Organizer) BaseDir() string { return o.baseDir }

// StagingDir returns the polled staging directory.
func (o *Organizer) StagingDir() string { return o.stagingDir }

// CategoryDir returns the directory holding a category's files.
func (o *Organizer) CategoryDir(c model.Category) string {
	return filepath.Join(o.baseDir, string(c))
}

// ManifestPath returns the manifest location under the base dir.
func (o *Organizer) ManifestPath() string {
	return filepath.Join(o.baseDir, ManifestName)
}

// EnsureDirs creates the base directory and one subdirectory per category.
func (o *Organizer) EnsureDirs() error {
	if err := os.MkdirAll(o.baseDir, 0o755); err != nil {
		return eris.Wrapf(err, "organizer: create %s", o.baseDir)
	}
	for _, c := range model.Categories {
		if err := os.MkdirAll(o.CategoryDir(c), 0o755); err != nil {
			return eris.Wrapf(err, "organizer: create %s", o.CategoryDir(c))
		}
	}
	return nil
}
