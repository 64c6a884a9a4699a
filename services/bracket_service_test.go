package services

import (
	"context"
	"testing"

	"github.com/Dosada05/cup-organizer/brackets"
	"github.com/Dosada05/cup-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifiers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)

	q, err := env.Bracket.Qualifiers(ctx, tid)
	require.NoError(t, err)
	require.Len(t, q.Teams, 8)
	require.Len(t, q.Pot1, 4)
	require.Len(t, q.Pot2, 4)

	for i, g := range groups {
		assert.Equal(t, g.Teams[0].ID, q.Pot1[i].ParticipantID, "group winners lead pot 1")
		assert.Equal(t, 1, q.Pot1[i].Position)
	}
	assert.Equal(t, 2, q.Pot1[3].Position)
	thirds := 0
	for _, team := range q.Pot2 {
		assert.Equal(t, brackets.Pot2, team.Pot)
		if team.Position == 3 {
			thirds++
		}
	}
	assert.Equal(t, 2, thirds)
}

func TestBracketNeedsGroupStage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.Bracket.Bracket(ctx, tid)
	require.ErrorIs(t, err, ErrBracketRequired)
	assert.ErrorIs(t, err, ErrDrawRequired)

	_, err = env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchQF1, brackets.KnockoutScore{HomeGoals: 1})
	assert.ErrorIs(t, err, ErrBracketRequired)
}

func TestSeedBracketOnlyOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)

	bracket, err := env.Bracket.SeedBracket(ctx, tid)
	require.NoError(t, err)
	for _, qf := range bracket.Quarterfinals {
		assert.Equal(t, brackets.Pot1, qf.HomeTeam.Pot)
		assert.Equal(t, brackets.Pot2, qf.AwayTeam.Pot)
		assert.Equal(t, models.MatchReady, qf.Status())
	}

	_, err = env.Bracket.SeedBracket(ctx, tid)
	assert.ErrorIs(t, err, ErrBracketExists)
}

func TestBracketSeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)

	seedOK := map[string]string{"operation": "bracket.seed", "outcome": "ok"}
	require.Zero(t, env.metricValue(t, "cup_organizer_operations_total", seedOK))

	first, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)
	require.Len(t, first.Quarterfinals, 4)
	assert.Equal(t, 1.0, env.metricValue(t, "cup_organizer_operations_total", seedOK))

	stored, err := env.repo.Bracket(ctx, tid)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// повторное чтение отдаёт сохранённую сетку и ничего не пишет
	again, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)
	for i, qf := range first.Quarterfinals {
		assert.Equal(t, qf.HomeTeam.ParticipantID, stored.Quarterfinals[i].HomeTeam.ParticipantID)
		assert.Equal(t, qf.AwayTeam.ParticipantID, again.Quarterfinals[i].AwayTeam.ParticipantID)
	}
	assert.Equal(t, 1.0, env.metricValue(t, "cup_organizer_operations_total", seedOK))
}

func TestKnockoutDrawNeedsExtraTime(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)
	_, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)

	_, err = env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchQF2, brackets.KnockoutScore{HomeGoals: 1, AwayGoals: 1})
	require.ErrorIs(t, err, brackets.ErrExtraTimeRequired)

	_, err = env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchSF1, brackets.KnockoutScore{HomeGoals: 1})
	require.ErrorIs(t, err, brackets.ErrMatchNotReady)

	res, err := env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchQF2, brackets.KnockoutScore{
		HomeGoals: 1, AwayGoals: 1,
		HomeExtraTimeGoals: intp(0), AwayExtraTimeGoals: intp(0),
		HomePenalties: intp(3), AwayPenalties: intp(4),
	})
	require.NoError(t, err)
	qf := res.Bracket.Match(brackets.MatchQF2)
	assert.Equal(t, qf.AwayTeam, qf.Winner)
	assert.Equal(t, qf.AwayTeam, res.Bracket.Semifinals[0].AwayTeam)
	assert.Empty(t, res.Reset)
}

// Полный турнир: 18 участников, три группы, плей-офф до чемпиона.
func TestFullTournament(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)

	bracket, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, models.BracketSeeded, bracket.State())

	again, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, bracket, again, "reading does not reseed")

	homeWin := brackets.KnockoutScore{HomeGoals: 2, AwayGoals: 1}
	for _, id := range []string{brackets.MatchQF1, brackets.MatchQF2, brackets.MatchQF3, brackets.MatchQF4, brackets.MatchSF1, brackets.MatchSF2} {
		_, err := env.Bracket.RecordKnockoutResult(ctx, tid, id, homeWin)
		require.NoError(t, err, id)
	}
	_, err = env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchThirdPlace, brackets.KnockoutScore{AwayGoals: 1})
	require.NoError(t, err)
	res, err := env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchFinal, brackets.KnockoutScore{
		HomeGoals: 0, AwayGoals: 0, HomeExtraTimeGoals: intp(0), AwayExtraTimeGoals: intp(1),
	})
	require.NoError(t, err)

	final := res.Bracket.Final
	assert.Nil(t, final.HomePenalties, "penalties are not stored when extra time decides")
	require.NotNil(t, res.Bracket.Champion)
	assert.Equal(t, bracket.Quarterfinals[2].HomeTeam.ParticipantID, res.Bracket.Champion.ParticipantID)
	assert.Equal(t, bracket.Quarterfinals[0].HomeTeam.ParticipantID, res.Bracket.RunnerUp.ParticipantID)
	assert.Equal(t, bracket.Quarterfinals[3].HomeTeam.ParticipantID, res.Bracket.ThirdPlaceWinner.ParticipantID)
	assert.Equal(t, models.BracketComplete, res.Bracket.State())

	snap, err := env.Snapshot.Snapshot(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, snap.Stage)
	assert.Len(t, snap.MatchHistory, 45)

	// правка четвертьфинала сбрасывает всё, что от него зависело
	res, err = env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchQF1, brackets.KnockoutScore{AwayGoals: 3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{brackets.MatchSF1, brackets.MatchFinal, brackets.MatchThirdPlace}, res.Reset)
	assert.Nil(t, res.Bracket.Champion)
	assert.Nil(t, res.Bracket.RunnerUp)
	assert.Nil(t, res.Bracket.ThirdPlaceWinner)
	assert.Equal(t, bracket.Quarterfinals[0].AwayTeam.ParticipantID, res.Bracket.Semifinals[0].HomeTeam.ParticipantID)
	assert.NotNil(t, res.Bracket.Semifinals[1].Winner, "the other semifinal keeps its result")
	assert.Equal(t, models.BracketInProgress, res.Bracket.State())
}

func TestResetBracket(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)
	_, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)
	_, err = env.Bracket.RecordKnockoutResult(ctx, tid, brackets.MatchQF1, brackets.KnockoutScore{HomeGoals: 1})
	require.NoError(t, err)

	fresh, err := env.Bracket.ResetBracket(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, models.BracketSeeded, fresh.State())
	for _, m := range fresh.Matches() {
		assert.Nil(t, m.Winner)
	}
}
