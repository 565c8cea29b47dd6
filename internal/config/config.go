package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Downloads DownloadsConfig `json:"downloads" mapstructure:"downloads"`
	Season    SeasonConfig    `json:"season" mapstructure:"season"`
	Sheets    SheetsConfig    `json:"google_sheets" mapstructure:"google_sheets"`
	Store     StoreConfig     `json:"store" mapstructure:"store"`
	Server    ServerConfig    `json:"server" mapstructure:"server"`
	Sources   SourcesConfig   `json:"sources" mapstructure:"sources"`
	Log       LogConfig       `json:"log" mapstructure:"log"`
}

// DownloadsConfig configures staging and project download locations.
type DownloadsConfig struct {
	// StagingDir is the generic system downloads folder polled for new
	// CSVs. Empty means $HOME/Downloads.
	StagingDir string `json:"staging_dir" mapstructure:"staging_dir"`
	// BaseDir is the project-relative organized downloads directory.
	BaseDir string `json:"base_dir" mapstructure:"base_dir"`
	// ScanWindowMinutes bounds how old a staged file may be to count as
	// a fresh download.
	ScanWindowMinutes int `json:"scan_window_minutes" mapstructure:"scan_window_minutes"`
}

// ScanWindow returns the scan window as a duration.
func (d DownloadsConfig) ScanWindow() time.Duration {
	return time.Duration(d.ScanWindowMinutes) * time.Minute
}

// StagingPath resolves the staging directory, defaulting to ~/Downloads.
func (d DownloadsConfig) StagingPath() (string, error) {
	if d.StagingDir != "" {
		return d.StagingDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", eris.Wrap(err, "config: resolve home directory")
	}
	return filepath.Join(home, "Downloads"), nil
}

// SeasonConfig holds the fixed NFL season parameters. Update each year.
type SeasonConfig struct {
	Start string `json:"start" mapstructure:"start"`
	Weeks int    `json:"weeks" mapstructure:"weeks"`
}

// StartDate parses the configured season start.
func (s SeasonConfig) StartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", s.Start)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "config: parse season start %q", s.Start)
	}
	return t, nil
}

// SheetsConfig holds Google Sheets upload settings.
type SheetsConfig struct {
	SheetID         string            `json:"sheet_id" mapstructure:"sheet_id"`
	CredentialsFile string            `json:"credentials_file" mapstructure:"credentials_file"`
	TabMappings     map[string]string `json:"tab_mappings" mapstructure:"tab_mappings"`
}

const sheetIDPlaceholder = "YOUR_SHEET_ID_HERE"

// Validate checks the sheets configuration before any upload attempt.
// Proceeding with a bad configuration would guarantee failure, so this
// fails fast with an actionable message.
func (s SheetsConfig) Validate() error {
	if s.SheetID == "" || s.SheetID == sheetIDPlaceholder {
		return eris.New("config: google sheet id not configured; set google_sheets.sheet_id in config.json")
	}
	info, err := os.Stat(s.CredentialsFile)
	if err != nil {
		return eris.Wrapf(err, "config: credentials file %s not found; download a service account JSON from Google Cloud Console", s.CredentialsFile)
	}
	if info.IsDir() {
		return eris.Errorf("config: credentials path %s is a directory, expected a JSON file", s.CredentialsFile)
	}
	if len(s.TabMappings) == 0 {
		return eris.New("config: google_sheets.tab_mappings is empty; map each source to a sheet tab")
	}
	return nil
}

// StoreConfig configures the run-history backend.
type StoreConfig struct {
	Driver      string `json:"driver" mapstructure:"driver"`
	DatabaseURL string `json:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the manifest HTTP endpoint.
type ServerConfig struct {
	Port int `json:"port" mapstructure:"port"`
}

// SourcesConfig points at the source registry file.
type SourcesConfig struct {
	File string `json:"file" mapstructure:"file"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// Load reads configuration from config.json and the environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file. The file is an external collaborator input and is
	// JSON by contract.
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("downloads.base_dir", "downloads")
	v.SetDefault("downloads.scan_window_minutes", 60)
	v.SetDefault("season.start", "2025-09-05")
	v.SetDefault("season.weeks", 18)
	v.SetDefault("google_sheets.credentials_file", "credentials.json")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "dfs-cli.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("sources.file", "sources.yaml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
