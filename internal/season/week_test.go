package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWeekForBeforeSeason(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 1, WeekFor(date(2025, time.June, 1), p))
	assert.Equal(t, 1, WeekFor(date(2025, time.September, 4), p))
	// week1 Monday itself precedes the opener
	assert.Equal(t, 1, WeekFor(date(2025, time.September, 1), p))
}

func TestWeekForDuringSeason(t *testing.T) {
	p := DefaultParams()

	// 2025 season opens Friday Sept 5; first Sunday is Sept 7, so week 1
	// prep anchors Monday Sept 1 and week 2 starts Monday Sept 8.
	tests := []struct {
		day  time.Time
		week int
	}{
		{date(2025, time.September, 5), 1},  // opening night
		{date(2025, time.September, 7), 1},  // first Sunday slate
		{date(2025, time.September, 8), 2},  // Monday rolls the week
		{date(2025, time.September, 14), 2}, // week 2 Sunday
		{date(2025, time.September, 15), 3},
		{date(2025, time.October, 6), 6},
		{date(2025, time.December, 29), 18},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.week, WeekFor(tt.day, p), tt.day.Format("2006-01-02"))
	}
}

func TestWeekForClampsToSeasonLength(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 18, WeekFor(date(2026, time.January, 15), p))
	assert.Equal(t, 18, WeekFor(date(2026, time.July, 1), p))
}

func TestWeekForMonotonic(t *testing.T) {
	p := DefaultParams()

	prev := 0
	day := date(2025, time.August, 1)
	for day.Before(date(2026, time.March, 1)) {
		week := WeekFor(day, p)
		assert.GreaterOrEqual(t, week, prev, day.Format("2006-01-02"))
		assert.GreaterOrEqual(t, week, 1)
		assert.LessOrEqual(t, week, 18)
		prev = week
		day = day.AddDate(0, 0, 1)
	}
}

func TestWeekForSundayStart(t *testing.T) {
	// A season starting on Sunday anchors week 1 on the following Sunday.
	p := Params{Start: time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC), Weeks: 18}

	assert.Equal(t, 1, WeekFor(date(2025, time.September, 7), p))
	assert.Equal(t, 1, WeekFor(date(2025, time.September, 10), p))
	assert.Equal(t, 2, WeekFor(date(2025, time.September, 15), p))
}
