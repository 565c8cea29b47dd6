package rotowire

import (
	"strconv"
	"strings"
)

// TeamOdds is one team's DraftKings lines, formatted for the weekly sheet.
type TeamOdds struct {
	Team       string
	Date       string
	Moneyline  string
	Spread     string
	Total      string
	TeamPoints string
	HomeAway   string
	Abbr       string
}

// ParseOdds extracts DraftKings lines from the raw response, skipping teams
// with no DraftKings market at all.
func ParseOdds(games []Game) []TeamOdds {
	var odds []TeamOdds
	for _, g := range games {
		if g.Moneyline == "" && g.Spread == "" && g.OverUnder == "" {
			continue
		}
		odds = append(odds, TeamOdds{
			Team:       g.Nickname,
			Date:       g.GameDate,
			Moneyline:  formatMoneyline(string(g.Moneyline)),
			Spread:     formatSpread(string(g.Spread)),
			Total:      string(g.OverUnder),
			TeamPoints: string(g.TeamTotalOver),
			HomeAway:   g.HomeAway,
			Abbr:       g.Abbr,
		})
	}
	return odds
}

// formatMoneyline prefixes favorites' lines with nothing and underdogs'
// with an explicit plus sign.
func formatMoneyline(raw string) string {
	if raw == "" {
		return ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	if n > 0 && !strings.HasPrefix(raw, "+") {
		return "+" + raw
	}
	return raw
}

func formatSpread(raw string) string {
	if raw == "" {
		return ""
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if n > 0 && !strings.HasPrefix(raw, "+") {
		return "+" + raw
	}
	return raw
}

// ToRecords renders odds as CSV records in the weekly sheet layout: a
// two-row header followed by one row per team.
func ToRecords(odds []TeamOdds) [][]string {
	records := [][]string{
		{"", "", "Win", "Cover", "Total Points", "Total Touchdowns", "Team Points", "Team TDs", "Team TDs"},
		{"Team", "Date", "Moneyline", "Spread", "Over-Under", "Over-Under", "Over-Under", "Over-Under", "Over-Under"},
	}
	for _, o := range odds {
		records = append(records, []string{
			o.Team, o.Date, o.Moneyline, o.Spread, o.Total, "", o.TeamPoints, "", "",
		})
	}
	return records
}
