package draftkings

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// kickoff layouts seen in draftgroups responses. Times are Eastern already,
// so the zone is ignored after parsing.
var kickoffLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	"01-02-2006 15:04:05",
}

var (
	clockRe    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})(AM|PM)\s*ET`)
	usDateRe   = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
	isoDateRe  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	usDateOnly = "01/02/2006"
	isoDate    = "2006-01-02"
)

// isSundayAfternoon reports whether the kickoff string falls on a Sunday
// between noon and 5 PM Eastern. Sunday Night Football and every other
// day's games fail the check.
func isSundayAfternoon(start string) bool {
	if start == "" {
		return false
	}

	for _, layout := range kickoffLayouts {
		t, err := time.Parse(layout, start)
		if err != nil {
			continue
		}
		if t.Weekday() != time.Sunday {
			return false
		}
		return t.Hour() >= 12 && t.Hour() <= 17
	}

	// "09/07/2025 01:00PM ET" style strings.
	if clock := clockRe.FindStringSubmatch(start); clock != nil {
		if date := usDateRe.FindString(start); date != "" {
			d, err := time.Parse(usDateOnly, date)
			if err != nil || d.Weekday() != time.Sunday {
				return false
			}
			hour, _ := strconv.Atoi(clock[1])
			if strings.EqualFold(clock[3], "PM") {
				if hour != 12 {
					hour += 12
				}
			} else if hour == 12 {
				hour = 0
			}
			return hour >= 12 && hour <= 17
		}
	}

	// Bare date: no time component, assume the afternoon slate if Sunday.
	if date := isoDateRe.FindString(start); date != "" {
		d, err := time.Parse(isoDate, date)
		return err == nil && d.Weekday() == time.Sunday
	}

	return false
}

// MainSlate picks the main Sunday slate: the upcoming Millionaire draft
// group whose games are all Sunday afternoon kickoffs, largest game count
// winning ties.
func MainSlate(resp *DraftGroupsResponse) (*DraftGroup, error) {
	var best *DraftGroup
	for i := range resp.DraftGroups {
		g := &resp.DraftGroups[i]
		if g.ContestType.Sport != "NFL" ||
			g.DraftGroupState != "Upcoming" ||
			g.ContestType.ContestTypeID != contestTypeMillionaire ||
			len(g.Games) == 0 {
			continue
		}

		allAfternoon := true
		for _, game := range g.Games {
			if !isSundayAfternoon(game.Start()) {
				allAfternoon = false
				break
			}
		}
		if !allAfternoon {
			continue
		}

		if best == nil || len(g.Games) > len(best.Games) {
			best = g
		}
	}

	if best == nil {
		return nil, eris.New("draftkings: no Sunday afternoon Millionaire slate found")
	}
	return best, nil
}
