package model

import "time"

// StagedFile is a CSV discovered in the staging (system downloads)
// directory. It is read-only to the organizer until relocated.
type StagedFile struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Category Category  `json:"category"`
	Position Position  `json:"position,omitempty"`
}

// OrganizedFile records a staged file successfully routed into project
// storage: a timestamped copy plus the category's refreshed latest pointer.
type OrganizedFile struct {
	Category    Category `json:"category"`
	Position    Position `json:"position,omitempty"`
	Original    string   `json:"original"`
	Destination string   `json:"destination"`
	Latest      string   `json:"latest"`
	Size        int64    `json:"size"`
}

// Manifest describes, as of the last successful organize run, every latest
// file available for upload. It is rebuilt from disk on each write, never
// patched incrementally.
type Manifest struct {
	Timestamp string          `json:"timestamp"`
	Files     []ManifestEntry `json:"files"`
}

// ManifestEntry describes one category's latest file.
type ManifestEntry struct {
	Source         Category `json:"source"`
	Path           string   `json:"path"`
	Size           int64    `json:"size"`
	Modified       int64    `json:"modified"`
	ReadyForUpload bool     `json:"ready_for_upload"`
}

// CategoryStatus summarizes one category's on-disk state for display.
type CategoryStatus struct {
	Category   Category
	LatestName string
	LatestSize int64
	UpdatedAt  time.Time
	TotalFiles int
	HasLatest  bool
}
