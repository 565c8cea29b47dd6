package organizer

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// Organize routes each staged file into its category directory: a
// timestamped copy, a refreshed latest pointer, and only then removal of
// the staged original. That ordering means a crash mid-operation never
// loses data: worst case the original stays staged and is reprocessed on
// the next run. Unknown files are logged and left in place. Filesystem
// errors are collected; remaining files are still processed.
func (o *Organizer) Organize(files []model.StagedFile) ([]model.OrganizedFile, []error) {
	var moved []model.OrganizedFile
	var errs []error

	for _, file := range files {
		if file.Category == model.CategoryUnknown {
			zap.L().Info("organizer: skipping unclassified file",
				zap.String("file", file.Name),
			)
			continue
		}
		if !model.ValidCategory(file.Category) {
			zap.L().Warn("organizer: unexpected category",
				zap.String("file", file.Name),
				zap.String("category", string(file.Category)),
			)
			continue
		}

		organized, err := o.organizeOne(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		moved = append(moved, *organized)
		zap.L().Info("organizer: relocated file",
			zap.String("source", string(file.Category)),
			zap.String("file", file.Name),
			zap.String("destination", filepath.Base(organized.Destination)),
		)
	}

	return moved, errs
}

func (o *Organizer) organizeOne(file model.StagedFile) (*model.OrganizedFile, error) {
	dir := o.CategoryDir(file.Category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "organizer: create %s", dir)
	}

	base := baseName(file.Category, file.Position)
	destPath := filepath.Join(dir, base+"_"+time.Now().Format(timestampFormat)+".csv")
	// Two files of one category landing in the same minute must not
	// clobber each other's timestamped copy.
	if _, err := os.Stat(destPath); err == nil {
		destPath = filepath.Join(dir, base+"_"+time.Now().Format(timestampFormat+"05")+".csv")
	}
	latestPath := filepath.Join(dir, base+"_latest.csv")

	if err := copyFile(file.Path, destPath); err != nil {
		return nil, eris.Wrapf(err, "organizer: copy %s", file.Name)
	}

	// Replace any prior latest so exactly one exists per base name.
	if err := os.Remove(latestPath); err != nil && !os.IsNotExist(err) {
		return nil, eris.Wrapf(err, "organizer: remove stale latest for %s", base)
	}
	if err := copyFile(destPath, latestPath); err != nil {
		return nil, eris.Wrapf(err, "organizer: refresh latest for %s", base)
	}

	// Both copies landed; the staged original is now safe to drop.
	if err := os.Remove(file.Path); err != nil {
		return nil, eris.Wrapf(err, "organizer: remove staged %s", file.Name)
	}

	return &model.OrganizedFile{
		Category:    file.Category,
		Position:    file.Position,
		Original:    file.Path,
		Destination: destPath,
		Latest:      latestPath,
		Size:        file.Size,
	}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
