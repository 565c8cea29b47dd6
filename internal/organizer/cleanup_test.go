package organizer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

func TestClearOld(t *testing.T) {
	o := newTestOrganizer(t)

	require.NoError(t, os.WriteFile(filepath.Join(o.BaseDir(), "loose.csv"), []byte("x"), 0o644))
	dkDir := o.CategoryDir(model.CategoryDraftKings)
	require.NoError(t, os.WriteFile(filepath.Join(dkDir, "draftkings_latest.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dkDir, "draftkings_20250907_1201.csv"), []byte("x"), 0o644))

	// A staged file must survive the sweep.
	staged := stage(t, o, "odds.csv", "Spread,Moneyline", time.Now())

	deleted, errs := o.ClearOld()
	assert.Empty(t, errs)
	assert.Equal(t, 3, deleted)

	assert.FileExists(t, staged)
	remaining, err := filepath.Glob(filepath.Join(dkDir, "*.csv"))
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestClearOldEmptyTree(t *testing.T) {
	o := newTestOrganizer(t)

	deleted, errs := o.ClearOld()
	assert.Zero(t, deleted)
	assert.Empty(t, errs)
}

func TestClearOldMissingDirs(t *testing.T) {
	o := New(t.TempDir(), filepath.Join(t.TempDir(), "never-created"))

	deleted, errs := o.ClearOld()
	assert.Zero(t, deleted)
	assert.Empty(t, errs)
}

func TestStatus(t *testing.T) {
	o := newTestOrganizer(t)

	dir := o.CategoryDir(model.CategoryProjections)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projections_latest.csv"), []byte("ProjPts"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projections_20250907_1201.csv"), []byte("ProjPts"), 0o644))

	statuses := o.Status()
	require.Len(t, statuses, len(model.Categories))

	byCategory := make(map[model.Category]model.CategoryStatus)
	for _, s := range statuses {
		byCategory[s.Category] = s
	}

	proj := byCategory[model.CategoryProjections]
	assert.True(t, proj.HasLatest)
	assert.Equal(t, "projections_latest.csv", proj.LatestName)
	assert.Equal(t, 2, proj.TotalFiles)

	odds := byCategory[model.CategoryOdds]
	assert.False(t, odds.HasLatest)
	assert.Zero(t, odds.TotalFiles)
}

func TestHasManifest(t *testing.T) {
	o := newTestOrganizer(t)
	assert.False(t, o.HasManifest())

	_, err := o.WriteManifest()
	require.NoError(t, err)
	assert.True(t, o.HasManifest())
}
