package organizer

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// ClearOld deletes every CSV under the project downloads tree in
// preparation for a new week. It is scoped strictly to project
// directories and never touches the staging dir. Deletion errors are
// collected; the sweep continues.
func (o *Organizer) ClearOld() (int, []error) {
	dirs := []string{o.baseDir}
	for _, c := range model.Categories {
		dirs = append(dirs, o.CategoryDir(c))
	}

	deleted := 0
	var errs []error
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
		if err != nil {
			errs = append(errs, eris.Wrapf(err, "organizer: list %s", dir))
			continue
		}
		for _, path := range matches {
			if err := os.Remove(path); err != nil {
				errs = append(errs, eris.Wrapf(err, "organizer: delete %s", filepath.Base(path)))
				continue
			}
			deleted++
			zap.L().Debug("organizer: deleted stale csv", zap.String("file", filepath.Base(path)))
		}
	}

	return deleted, errs
}
