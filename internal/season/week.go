// Package season infers the current NFL week from a date.
package season

import "time"

// Params holds the fixed season parameters.
type Params struct {
	// Start is the first game of Week 1 (the Thursday/Friday opener).
	Start time.Time
	// Weeks is the total number of regular season weeks.
	Weeks int
}

// DefaultParams returns the current season's parameters. Update each year.
func DefaultParams() Params {
	return Params{
		Start: time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
		Weeks: 18,
	}
}

// WeekFor returns the NFL week in [1, p.Weeks] for the given date.
//
// Each Monday starts that week's preparation cycle: the primary slate is
// the following Sunday, so the Monday on or before the season's first
// Sunday anchors week 1. Dates before the season start map to week 1 and
// dates past the season's end clamp to the final week.
func WeekFor(now time.Time, p Params) int {
	if now.Before(p.Start) {
		return 1
	}

	week1Monday := firstSunday(p.Start).AddDate(0, 0, -6)

	elapsedDays := int(now.Sub(week1Monday).Hours() / 24)
	week := elapsedDays/7 + 1

	if week < 1 {
		return 1
	}
	if week > p.Weeks {
		return p.Weeks
	}
	return week
}

// firstSunday returns the first Sunday strictly after a season starting
// on Sunday, otherwise the Sunday on or after start.
func firstSunday(start time.Time) time.Time {
	days := (7 - int(start.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return start.AddDate(0, 0, days)
}
