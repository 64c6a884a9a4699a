package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func intp(v int) *int { return &v }

func TestWriteWorkbook(t *testing.T) {
	ann := models.StandingRow{ParticipantID: uuid.New(), ParticipantName: "Ann", Club: "Ajax", Played: 1, Won: 1, GoalsFor: 2, GoalDifference: 2, Points: 3}
	bob := models.StandingRow{ParticipantID: uuid.New(), ParticipantName: "Bob", Club: "PSV", Played: 1, Lost: 1, GoalsAgainst: 2, GoalDifference: -2}
	annQ := &models.QualifiedTeam{StandingRow: ann, GroupID: 1, GroupName: "Group A", Position: 1}
	bobQ := &models.QualifiedTeam{StandingRow: bob, GroupID: 1, GroupName: "Group A", Position: 2}

	snap := &models.Snapshot{
		GroupStandings: []models.GroupStanding{{GroupID: 1, GroupName: "Group A", Teams: []models.StandingRow{ann, bob}}},
		MatchHistory: []models.MatchRecord{{
			ID:        uuid.New(),
			Timestamp: time.Date(2024, 6, 14, 19, 0, 0, 0, time.UTC),
			GroupName: "Group A",
			HomeTeam:  models.MatchSide{ID: ann.ParticipantID, Name: "Ann"},
			AwayTeam:  models.MatchSide{ID: bob.ParticipantID, Name: "Bob"},
			HomeGoals: 2,
			Result:    models.ResultHome,
		}},
		KnockoutMatches: &models.Bracket{
			Final: models.KnockoutMatch{
				ID: "final", Stage: models.StageFinal, HomeTeam: annQ, AwayTeam: bobQ,
				HomeGoals: intp(1), AwayGoals: intp(1),
				HomeExtraTimeGoals: intp(0), AwayExtraTimeGoals: intp(0),
				HomePenalties: intp(5), AwayPenalties: intp(4),
				Winner: annQ,
			},
			Champion: annQ,
			RunnerUp: bobQ,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetStandings, SheetMatches, SheetKnockout}, f.GetSheetList())

	rows, err := f.GetRows(SheetStandings)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Group A"}, rows[0])
	assert.Equal(t, "Pts", rows[1][10])
	assert.Equal(t, []string{"1", "Ann", "Ajax", "1", "1", "0", "0", "2", "0", "2", "3"}, rows[2])

	rows, err = f.GetRows(SheetMatches)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-06-14 19:00", "Group A", "Ann", "Bob", "2:0", "home"}, rows[1])

	rows, err = f.GetRows(SheetKnockout)
	require.NoError(t, err)
	var final, champion []string
	for _, r := range rows {
		if len(r) > 0 && r[0] == "final" {
			final = r
		}
		if len(r) > 0 && r[0] == "Champion" {
			champion = r
		}
	}
	assert.Equal(t, []string{"final", "final", "Ann (Ajax)", "Bob (PSV)", "1:1", "0:0", "5:4", "Ann (Ajax)"}, final)
	assert.Equal(t, []string{"Champion", "Ann (Ajax)"}, champion)
}

func TestWriteWorkbookWithoutBracket(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, &models.Snapshot{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetStandings, SheetMatches}, f.GetSheetList())
}
