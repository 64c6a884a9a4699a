package brackets

import (
	"testing"
	"time"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, []models.Group) {
	t.Helper()
	draw, err := DrawGroups(makeParticipants(t, 18), DrawConfig{GroupCount: 3, GroupSize: 6}, NewSeededRandomizer(5))
	require.NoError(t, err)
	return &Ledger{Standings: InitializeStandings(draw.Groups)}, draw.Groups
}

func assertRowInvariants(t *testing.T, standings []models.GroupStanding) {
	t.Helper()
	for _, gs := range standings {
		for _, r := range gs.Teams {
			assert.Equal(t, r.Played, r.Won+r.Drawn+r.Lost, r.ParticipantName)
			assert.Equal(t, r.GoalDifference, r.GoalsFor-r.GoalsAgainst, r.ParticipantName)
			assert.Equal(t, r.Points, 3*r.Won+r.Drawn, r.ParticipantName)
		}
	}
}

func TestInitializeStandings(t *testing.T) {
	l, groups := newTestLedger(t)
	require.Len(t, l.Standings, len(groups))
	for i, gs := range l.Standings {
		assert.Equal(t, groups[i].ID, gs.GroupID)
		assert.Equal(t, groups[i].Name, gs.GroupName)
		assert.Len(t, gs.Teams, len(groups[i].Teams))
		for _, r := range gs.Teams {
			assert.Zero(t, r.Played)
			assert.NotEmpty(t, r.Club)
		}
	}
}

func TestRecordMatchUpdatesBothRows(t *testing.T) {
	l, groups := newTestLedger(t)
	g := groups[0]
	home, away := g.Teams[0], g.Teams[1]
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	rec, err := l.RecordMatch(MatchInput{GroupID: g.ID, HomeID: home.ID, AwayID: away.ID, HomeGoals: 3, AwayGoals: 1}, now, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.ResultHome, rec.Result)
	assert.Equal(t, g.Name, rec.GroupName)
	assert.Equal(t, now, rec.Timestamp)
	require.Len(t, l.History, 1)

	h, a := l.Standings[0].Row(home.ID), l.Standings[0].Row(away.ID)
	assert.Equal(t, models.StandingRow{ParticipantID: home.ID, ParticipantName: home.Name, Club: home.ClubName(),
		Played: 1, Won: 1, GoalsFor: 3, GoalsAgainst: 1, GoalDifference: 2, Points: 3}, *h)
	assert.Equal(t, 1, a.Lost)
	assert.Equal(t, -2, a.GoalDifference)
	assert.Equal(t, home.ID, l.Standings[0].Teams[0].ParticipantID, "winner moves to the top")

	_, err = l.RecordMatch(MatchInput{GroupID: g.ID, HomeID: home.ID, AwayID: away.ID, HomeGoals: 2, AwayGoals: 2}, now, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 4, l.Standings[0].Row(home.ID).Points)
	assert.Equal(t, 1, l.Standings[0].Row(away.ID).Points)
	assertRowInvariants(t, l.Standings)
}

func TestRecordMatchValidation(t *testing.T) {
	l, groups := newTestLedger(t)
	a, b := groups[0].Teams[0], groups[0].Teams[1]
	other := groups[1].Teams[0]
	now := time.Now()

	tests := []struct {
		name string
		in   MatchInput
		want error
	}{
		{"same team", MatchInput{GroupID: 1, HomeID: a.ID, AwayID: a.ID}, ErrSameTeam},
		{"negative goals", MatchInput{GroupID: 1, HomeID: a.ID, AwayID: b.ID, HomeGoals: -1}, ErrNegativeGoals},
		{"unknown group", MatchInput{GroupID: 9, HomeID: a.ID, AwayID: b.ID}, ErrGroupNotFound},
		{"team from another group", MatchInput{GroupID: 1, HomeID: a.ID, AwayID: other.ID}, ErrTeamNotInGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.RecordMatch(tt.in, now, uuid.New())
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, l.History)
		})
	}
}

func TestRecordRetractRoundTrip(t *testing.T) {
	tests := []struct {
		name                 string
		home, away           int
		homeGoals, awayGoals int
	}{
		{"home win", 0, 1, 3, 1},
		{"home win reversed sides", 1, 0, 3, 1},
		{"away win", 0, 1, 1, 4},
		{"away win reversed sides", 1, 0, 1, 4},
		{"goalless draw", 0, 1, 0, 0},
		{"scoring draw", 1, 0, 2, 2},
		{"high scoring win", 0, 1, 9, 7},
		{"high scoring away win", 1, 0, 7, 9},
		{"high scoring draw", 0, 1, 12, 12},
		{"team with baseline result", 2, 4, 5, 0},
		{"both teams with baseline result", 3, 2, 0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, groups := newTestLedger(t)
			g := groups[1]
			now := time.Now()

			// таблица уже не нулевая, откат должен вернуть именно её
			_, err := l.RecordMatch(MatchInput{GroupID: g.ID, HomeID: g.Teams[2].ID, AwayID: g.Teams[3].ID, HomeGoals: 2, AwayGoals: 2}, now, uuid.New())
			require.NoError(t, err)

			before := cloneStandings(l.Standings)
			historyBefore := len(l.History)

			id := uuid.New()
			in := MatchInput{GroupID: g.ID, HomeID: g.Teams[tt.home].ID, AwayID: g.Teams[tt.away].ID, HomeGoals: tt.homeGoals, AwayGoals: tt.awayGoals}
			_, err = l.RecordMatch(in, now, id)
			require.NoError(t, err)
			assertRowInvariants(t, l.Standings)
			assert.NotEqual(t, before, l.Standings)

			_, err = l.RetractMatch(id)
			require.NoError(t, err)
			assert.Equal(t, before, l.Standings)
			assert.Len(t, l.History, historyBefore)

			_, err = l.RetractMatch(id)
			assert.ErrorIs(t, err, ErrMatchRecordNotFound)
		})
	}
}

func TestLedgerRemoveParticipant(t *testing.T) {
	l, groups := newTestLedger(t)
	g := groups[0]
	gone, stay1, stay2 := g.Teams[0], g.Teams[1], g.Teams[2]
	now := time.Now()

	for _, in := range []MatchInput{
		{GroupID: g.ID, HomeID: gone.ID, AwayID: stay1.ID, HomeGoals: 2, AwayGoals: 0},
		{GroupID: g.ID, HomeID: stay2.ID, AwayID: gone.ID, HomeGoals: 1, AwayGoals: 1},
		{GroupID: g.ID, HomeID: stay1.ID, AwayID: stay2.ID, HomeGoals: 3, AwayGoals: 2},
	} {
		_, err := l.RecordMatch(in, now, uuid.New())
		require.NoError(t, err)
	}

	removed := l.RemoveParticipant(gone.ID)
	assert.Len(t, removed, 2)
	require.Len(t, l.History, 1)
	assert.Nil(t, l.Standings[0].Row(gone.ID))

	s1 := l.Standings[0].Row(stay1.ID)
	assert.Equal(t, 1, s1.Played)
	assert.Equal(t, 3, s1.Points)
	assertRowInvariants(t, l.Standings)
}

func TestLedgerReset(t *testing.T) {
	l, groups := newTestLedger(t)
	g := groups[2]
	_, err := l.RecordMatch(MatchInput{GroupID: g.ID, HomeID: g.Teams[0].ID, AwayID: g.Teams[1].ID, HomeGoals: 5}, time.Now(), uuid.New())
	require.NoError(t, err)

	l.Reset()
	assert.Empty(t, l.History)
	for _, gs := range l.Standings {
		for _, r := range gs.Teams {
			assert.Zero(t, r.Played)
			assert.Zero(t, r.Points)
			assert.NotEmpty(t, r.ParticipantName)
		}
	}
}

func TestReconcileStandings(t *testing.T) {
	l, groups := newTestLedger(t)
	g := groups[0]
	_, err := l.RecordMatch(MatchInput{GroupID: g.ID, HomeID: g.Teams[0].ID, AwayID: g.Teams[1].ID, HomeGoals: 1}, time.Now(), uuid.New())
	require.NoError(t, err)

	t.Run("matching structure keeps stats", func(t *testing.T) {
		renamed := cloneGroups(groups)
		renamed[0].Teams[0].Name = "Renamed"

		out, reinit := ReconcileStandings(renamed, l.Standings)
		assert.False(t, reinit)
		r := out[0].Row(g.Teams[0].ID)
		assert.Equal(t, "Renamed", r.ParticipantName)
		assert.Equal(t, 3, r.Points)
		assert.Equal(t, g.Teams[0].Name, l.Standings[0].Row(g.Teams[0].ID).ParticipantName, "input is not modified")
	})

	t.Run("structure mismatch reinitializes", func(t *testing.T) {
		changed := cloneGroups(groups)
		changed[0].Teams = changed[0].Teams[1:]

		out, reinit := ReconcileStandings(changed, l.Standings)
		assert.True(t, reinit)
		assert.Len(t, out[0].Teams, len(changed[0].Teams))
		for _, gs := range out {
			for _, r := range gs.Teams {
				assert.Zero(t, r.Played)
			}
		}
	})

	t.Run("missing standings", func(t *testing.T) {
		out, reinit := ReconcileStandings(groups, nil)
		assert.True(t, reinit)
		assert.Len(t, out, 3)
	})
}

func TestGroupComplete(t *testing.T) {
	l, groups := newTestLedger(t)
	g := groups[0]
	assert.False(t, GroupComplete(l.Standings[0], l.History))

	for i := range g.Teams {
		for j := i + 1; j < len(g.Teams); j++ {
			_, err := l.RecordMatch(MatchInput{GroupID: g.ID, HomeID: g.Teams[j].ID, AwayID: g.Teams[i].ID}, time.Now(), uuid.New())
			require.NoError(t, err)
		}
	}
	assert.True(t, GroupComplete(l.Standings[0], l.History))
	assert.False(t, GroupComplete(l.Standings[1], l.History))
}

func cloneStandings(in []models.GroupStanding) []models.GroupStanding {
	out := make([]models.GroupStanding, len(in))
	for i, gs := range in {
		gs.Teams = append([]models.StandingRow(nil), gs.Teams...)
		out[i] = gs
	}
	return out
}

func cloneGroups(in []models.Group) []models.Group {
	out := make([]models.Group, len(in))
	for i, g := range in {
		g.Teams = append([]models.Participant(nil), g.Teams...)
		out[i] = g
	}
	return out
}
