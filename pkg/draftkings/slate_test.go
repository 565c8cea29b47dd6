package draftkings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-09-07 is a Sunday, 2025-09-08 a Monday.
func TestIsSundayAfternoon(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  bool
	}{
		{"empty", "", false},
		{"iso sunday 1pm", "2025-09-07T13:00:00Z", true},
		{"iso sunday 4:25pm", "2025-09-07T16:25:00.000Z", true},
		{"iso sunday night football", "2025-09-07T20:20:00Z", false},
		{"iso sunday morning", "2025-09-07T09:30:00Z", false},
		{"iso monday night", "2025-09-08T20:15:00Z", false},
		{"iso thursday", "2025-09-04T20:15:00Z", false},
		{"plain datetime sunday", "2025-09-07 13:00:00", true},
		{"us datetime sunday", "09/07/2025 13:00:00", true},
		{"clock style sunday 1pm", "09/07/2025 01:00PM ET", true},
		{"clock style sunday 4:25pm", "09/07/2025 04:25PM ET", true},
		{"clock style sunday night", "09/07/2025 08:20PM ET", false},
		{"clock style monday", "09/08/2025 01:00PM ET", false},
		{"bare sunday date", "2025-09-07", true},
		{"bare monday date", "2025-09-08", false},
		{"garbage", "kickoff eventually", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSundayAfternoon(tt.start), tt.start)
		})
	}
}

func upcomingGroup(id int, starts ...string) DraftGroup {
	games := make([]Game, len(starts))
	for i, s := range starts {
		games[i] = Game{StartTime: s}
	}
	return DraftGroup{
		DraftGroupID:    id,
		DraftGroupState: "Upcoming",
		ContestType:     ContestType{ContestTypeID: contestTypeMillionaire, Sport: "NFL"},
		Games:           games,
	}
}

func TestMainSlate_PicksLargestAfternoonSlate(t *testing.T) {
	resp := &DraftGroupsResponse{DraftGroups: []DraftGroup{
		upcomingGroup(1, "2025-09-07T13:00:00Z", "2025-09-07T16:25:00Z"),
		upcomingGroup(2, "2025-09-07T13:00:00Z", "2025-09-07T13:00:00Z", "2025-09-07T16:05:00Z"),
	}}

	slate, err := MainSlate(resp)
	require.NoError(t, err)
	assert.Equal(t, 2, slate.DraftGroupID)
}

func TestMainSlate_RejectsMixedSlates(t *testing.T) {
	// The full-week slate includes Sunday Night Football and Monday games.
	mixed := upcomingGroup(3, "2025-09-07T13:00:00Z", "2025-09-07T20:20:00Z", "2025-09-08T20:15:00Z")
	afternoon := upcomingGroup(4, "2025-09-07T13:00:00Z")

	slate, err := MainSlate(&DraftGroupsResponse{DraftGroups: []DraftGroup{mixed, afternoon}})
	require.NoError(t, err)
	assert.Equal(t, 4, slate.DraftGroupID)
}

func TestMainSlate_FiltersSportStateAndContestType(t *testing.T) {
	nba := upcomingGroup(5, "2025-09-07T13:00:00Z")
	nba.ContestType.Sport = "NBA"

	finished := upcomingGroup(6, "2025-09-07T13:00:00Z")
	finished.DraftGroupState = "Historical"

	showdown := upcomingGroup(7, "2025-09-07T13:00:00Z")
	showdown.ContestType.ContestTypeID = 96

	empty := upcomingGroup(8)

	_, err := MainSlate(&DraftGroupsResponse{DraftGroups: []DraftGroup{nba, finished, showdown, empty}})
	require.Error(t, err)
}

func TestMainSlate_EmptyResponse(t *testing.T) {
	_, err := MainSlate(&DraftGroupsResponse{})
	require.Error(t, err)
}

func TestGame_StartFieldFallback(t *testing.T) {
	assert.Equal(t, "a", Game{StartTime: "a", StartDate: "b"}.Start())
	assert.Equal(t, "b", Game{StartDate: "b"}.Start())
	assert.Equal(t, "e", Game{StartDateTime: "e"}.Start())
	assert.Equal(t, "", Game{}.Start())
}

func TestCSVURL(t *testing.T) {
	g := upcomingGroup(133559, "2025-09-07T13:00:00Z")
	assert.Equal(t,
		"https://www.draftkings.com/lineup/getavailableplayerscsv?contestTypeId=21&draftGroupId=133559",
		CSVURL(&g))
}
