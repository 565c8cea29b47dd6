package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.json is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "downloads", cfg.Downloads.BaseDir)
	assert.Equal(t, 60, cfg.Downloads.ScanWindowMinutes)
	assert.Equal(t, "2025-09-05", cfg.Season.Start)
	assert.Equal(t, 18, cfg.Season.Weeks)
	assert.Equal(t, "credentials.json", cfg.Sheets.CredentialsFile)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sources.yaml", cfg.Sources.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromJSON(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	raw := `{
  "downloads": {"staging_dir": "/tmp/stage", "scan_window_minutes": 30},
  "google_sheets": {
    "sheet_id": "abc123",
    "tab_mappings": {"draftkings": "DKSalRaw", "nfl_odds": "oddsraw"}
  },
  "log": {"level": "debug"}
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stage", cfg.Downloads.StagingDir)
	assert.Equal(t, 30, cfg.Downloads.ScanWindowMinutes)
	assert.Equal(t, 30*time.Minute, cfg.Downloads.ScanWindow())
	assert.Equal(t, "abc123", cfg.Sheets.SheetID)
	assert.Equal(t, "DKSalRaw", cfg.Sheets.TabMappings["draftkings"])
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for untouched sections.
	assert.Equal(t, "downloads", cfg.Downloads.BaseDir)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestStagingPathExplicit(t *testing.T) {
	d := DownloadsConfig{StagingDir: "/data/incoming"}
	path, err := d.StagingPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/incoming", path)
}

func TestStagingPathDefault(t *testing.T) {
	d := DownloadsConfig{}
	path, err := d.StagingPath()
	require.NoError(t, err)
	assert.Equal(t, "Downloads", filepath.Base(path))
}

func TestSeasonStartDate(t *testing.T) {
	s := SeasonConfig{Start: "2025-09-05"}
	start, err := s.StartDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC), start)

	_, err = SeasonConfig{Start: "09/05/2025"}.StartDate()
	assert.Error(t, err)
}

func TestSheetsValidate(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(creds, []byte(`{"type":"service_account"}`), 0o600))

	valid := SheetsConfig{
		SheetID:         "abc123",
		CredentialsFile: creds,
		TabMappings:     map[string]string{"draftkings": "Salaries"},
	}
	assert.NoError(t, valid.Validate())

	placeholder := valid
	placeholder.SheetID = "YOUR_SHEET_ID_HERE"
	assert.Error(t, placeholder.Validate())

	missing := valid
	missing.SheetID = ""
	assert.Error(t, missing.Validate())

	noCreds := valid
	noCreds.CredentialsFile = filepath.Join(dir, "nope.json")
	assert.Error(t, noCreds.Validate())

	credsDir := valid
	credsDir.CredentialsFile = dir
	assert.Error(t, credsDir.Validate())

	noTabs := valid
	noTabs.TabMappings = nil
	assert.Error(t, noTabs.Validate())
}

func TestInitLogger(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())

	err = InitLogger(LogConfig{Level: "bogus", Format: "json"})
	assert.Error(t, err)
}
