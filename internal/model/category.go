package model

import "strings"

// Category identifies which data source a staged CSV belongs to.
type Category string

const (
	CategoryProjections Category = "projections"
	CategoryDraftKings  Category = "draftkings"
	CategoryOdds        Category = "nfl_odds"
	CategorySOS         Category = "sos"
	// CategoryUnknown is a valid terminal classification, not an error.
	// Files classified unknown are reported and left in staging.
	CategoryUnknown Category = "unknown"
)

// Categories lists every organizable category in display order.
// CategoryUnknown is intentionally excluded; it has no directory.
var Categories = []Category{
	CategoryProjections,
	CategoryDraftKings,
	CategoryOdds,
	CategorySOS,
}

// Slug returns the category's file-name slug (underscores become dashes,
// e.g. nfl_odds → nfl-odds).
func (c Category) Slug() string {
	return strings.ReplaceAll(string(c), "_", "-")
}

// DisplayName returns a human-readable name for summaries.
func (c Category) DisplayName() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// ValidCategory reports whether c is an organizable category.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Position tags a strength-of-schedule file with the roster position it
// covers. Empty means the file carries no position marker.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionDST Position = "DST"
)

// Positions lists the recognized SOS positions in match order.
var Positions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionDST}
