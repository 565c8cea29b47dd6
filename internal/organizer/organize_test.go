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

func TestOrganizeEndToEnd(t *testing.T) {
	o := newTestOrganizer(t)
	now := time.Now()

	stage(t, o, "plays.csv", "ProjPts,ProjOwn,Player", now.Add(-time.Minute))
	stage(t, o, "odds.csv", "Team,Spread,Moneyline", now)

	files, err := o.Scan(60 * time.Minute)
	require.NoError(t, err)
	require.Len(t, files, 2)

	moved, errs := o.Organize(files)
	assert.Empty(t, errs)
	require.Len(t, moved, 2)

	assert.FileExists(t, filepath.Join(o.BaseDir(), "projections", "projections_latest.csv"))
	assert.FileExists(t, filepath.Join(o.BaseDir(), "nfl_odds", "nfl-odds_latest.csv"))

	// Staging is empty afterwards.
	remaining, err := o.Scan(60 * time.Minute)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// Manifest lists exactly the two latest files, ready for upload.
	_, err = o.WriteManifest()
	require.NoError(t, err)
	manifest, err := o.ReadManifest()
	require.NoError(t, err)
	require.Len(t, manifest.Files, 2)
	for _, entry := range manifest.Files {
		assert.True(t, entry.ReadyForUpload)
		assert.Positive(t, entry.Size)
		assert.Positive(t, entry.Modified)
	}
}

func TestOrganizeLatestInvariant(t *testing.T) {
	o := newTestOrganizer(t)

	stage(t, o, "first_odds.csv", "Team,Spread,Moneyline\nKC,-3,-150", time.Now())
	files, err := o.Scan(time.Hour)
	require.NoError(t, err)
	_, errs := o.Organize(files)
	require.Empty(t, errs)

	second := "Team,Spread,Moneyline\nBUF,+2,+120"
	stage(t, o, "second_odds.csv", second, time.Now())
	files, err = o.Scan(time.Hour)
	require.NoError(t, err)
	_, errs = o.Organize(files)
	require.Empty(t, errs)

	dir := o.CategoryDir(model.CategoryOdds)
	latests, err := filepath.Glob(filepath.Join(dir, "*_latest.csv"))
	require.NoError(t, err)
	require.Len(t, latests, 1, "exactly one latest per category")

	// Latest mirrors the second file's bytes.
	data, err := os.ReadFile(latests[0])
	require.NoError(t, err)
	assert.Equal(t, second, string(data))

	// A timestamped copy of the first file still exists.
	all, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	assert.Len(t, all, 3) // two timestamped + one latest
}

func TestOrganizeLeavesUnknownUntouched(t *testing.T) {
	o := newTestOrganizer(t)
	path := stage(t, o, "mystery.csv", "eggs,milk,bread", time.Now())

	files, err := o.Scan(time.Hour)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, model.CategoryUnknown, files[0].Category)

	moved, errs := o.Organize(files)
	assert.Empty(t, errs)
	assert.Empty(t, moved)

	// Still staged, never deleted.
	assert.FileExists(t, path)
}

func TestOrganizeEmptyStagingIsNoOp(t *testing.T) {
	o := newTestOrganizer(t)

	// Seed a manifest, then organize nothing twice.
	stage(t, o, "odds.csv", "Spread,Moneyline", time.Now())
	files, err := o.Scan(time.Hour)
	require.NoError(t, err)
	o.Organize(files)
	_, err = o.WriteManifest()
	require.NoError(t, err)
	before, err := os.ReadFile(o.ManifestPath())
	require.NoError(t, err)

	for range 2 {
		files, err := o.Scan(time.Hour)
		require.NoError(t, err)
		moved, errs := o.Organize(files)
		assert.Empty(t, moved)
		assert.Empty(t, errs)
	}

	after, err := os.ReadFile(o.ManifestPath())
	require.NoError(t, err)
	assert.Equal(t, before, after, "manifest untouched by empty organize runs")
}

func TestOrganizeSOSPositionScoping(t *testing.T) {
	o := newTestOrganizer(t)
	now := time.Now()

	stage(t, o, "SOS_QB_Week5.csv", "Strength Of Schedule, Opp Avg FPA\nqb", now)
	stage(t, o, "SOS_RB_Week5.csv", "Strength Of Schedule, Opp Avg FPA\nrb", now)

	files, err := o.Scan(time.Hour)
	require.NoError(t, err)
	moved, errs := o.Organize(files)
	assert.Empty(t, errs)
	require.Len(t, moved, 2)

	dir := o.CategoryDir(model.CategorySOS)
	assert.FileExists(t, filepath.Join(dir, "sos-qb_latest.csv"))
	assert.FileExists(t, filepath.Join(dir, "sos-rb_latest.csv"))

	// Each position keeps its own latest; the manifest carries both.
	_, err = o.WriteManifest()
	require.NoError(t, err)
	manifest, err := o.ReadManifest()
	require.NoError(t, err)
	assert.Len(t, manifest.Files, 2)
	for _, entry := range manifest.Files {
		assert.Equal(t, model.CategorySOS, entry.Source)
	}
}

func TestOrganizeSameCategorySameMinute(t *testing.T) {
	o := newTestOrganizer(t)

	stage(t, o, "dk_one.csv", "DraftKings,Salary,Roster Position\n1", time.Now())
	files, err := o.Scan(time.Hour)
	require.NoError(t, err)
	_, errs := o.Organize(files)
	require.Empty(t, errs)

	stage(t, o, "dk_two.csv", "DraftKings,Salary,Roster Position\n2", time.Now())
	files, err = o.Scan(time.Hour)
	require.NoError(t, err)
	_, errs = o.Organize(files)
	require.Empty(t, errs)

	// Both timestamped copies survive even inside one minute.
	all, err := filepath.Glob(filepath.Join(o.CategoryDir(model.CategoryDraftKings), "*.csv"))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrganizeCollectsErrorsAndContinues(t *testing.T) {
	o := newTestOrganizer(t)

	good := stage(t, o, "odds.csv", "Spread,Moneyline", time.Now())

	files := []model.StagedFile{
		{
			Path:     filepath.Join(o.StagingDir(), "vanished.csv"),
			Name:     "vanished.csv",
			Category: model.CategoryDraftKings,
		},
		{
			Path:     good,
			Name:     "odds.csv",
			Category: model.CategoryOdds,
		},
	}

	moved, errs := o.Organize(files)
	assert.Len(t, errs, 1)
	require.Len(t, moved, 1)
	assert.Equal(t, model.CategoryOdds, moved[0].Category)
}
