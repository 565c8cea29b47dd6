package draftkings

// contestTypeMillionaire is the classic-salary-cap contest type behind the
// Fantasy Football Millionaire slates.
const contestTypeMillionaire = 21

// DraftGroupsResponse is the payload from the draftgroups API.
type DraftGroupsResponse struct {
	DraftGroups []DraftGroup `json:"draftGroups"`
}

// DraftGroup is one slate of games players can draft from.
type DraftGroup struct {
	DraftGroupID    int         `json:"draftGroupId"`
	DraftGroupState string      `json:"draftGroupState"`
	ContestType     ContestType `json:"contestType"`
	Games           []Game      `json:"games"`
}

// ContestType identifies the contest format and sport of a draft group.
type ContestType struct {
	ContestTypeID int    `json:"contestTypeId"`
	Sport         string `json:"sport"`
}

// Game is a single matchup in a draft group. The API is inconsistent about
// which field carries the kickoff time, so all known spellings are decoded.
type Game struct {
	StartTime     string `json:"startTime"`
	StartDate     string `json:"startDate"`
	GameTime      string `json:"gameTime"`
	Date          string `json:"date"`
	StartDateTime string `json:"startDateTime"`
}

// Start returns the first non-empty kickoff field.
func (g Game) Start() string {
	for _, s := range []string{g.StartTime, g.StartDate, g.GameTime, g.Date, g.StartDateTime} {
		if s != "" {
			return s
		}
	}
	return ""
}
