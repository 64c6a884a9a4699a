package brackets

import (
	"testing"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededBracket(t *testing.T) *models.Bracket {
	t.Helper()
	pot1, pot2 := examplePots()
	pairings, err := PairQuarterfinals(pot1, pot2, NewSeededRandomizer(3))
	require.NoError(t, err)
	b, err := NewBracket(pairings)
	require.NoError(t, err)
	return b
}

func homeWin() KnockoutScore { return KnockoutScore{HomeGoals: 2, AwayGoals: 1} }
func awayWin() KnockoutScore { return KnockoutScore{HomeGoals: 0, AwayGoals: 1} }

func TestNewBracket(t *testing.T) {
	b := seededBracket(t)
	require.Len(t, b.Quarterfinals, 4)
	for i, m := range b.Quarterfinals {
		assert.Equal(t, quarterfinalIDs[i], m.ID)
		assert.Equal(t, models.MatchReady, m.Status())
		assert.Equal(t, Pot1, m.HomeTeam.Pot)
	}
	for _, m := range append(b.Semifinals, b.Final, b.ThirdPlace) {
		assert.Equal(t, models.MatchPending, m.Status())
	}
	assert.Equal(t, models.BracketSeeded, b.State())

	_, err := NewBracket(nil)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestRecordResultWinnerRules(t *testing.T) {
	tests := []struct {
		name      string
		score     KnockoutScore
		homeWins  bool
		wantET    bool
		wantPens  bool
		wantError error
	}{
		{name: "regulation home win", score: homeWin(), homeWins: true},
		{name: "regulation away win", score: awayWin()},
		{name: "extra time decides", score: KnockoutScore{HomeGoals: 1, AwayGoals: 1, HomeExtraTimeGoals: ptr(0), AwayExtraTimeGoals: ptr(1)}, wantET: true},
		{
			name: "penalties decide",
			score: KnockoutScore{HomeGoals: 1, AwayGoals: 1, HomeExtraTimeGoals: ptr(0), AwayExtraTimeGoals: ptr(0),
				HomePenalties: ptr(5), AwayPenalties: ptr(4)},
			homeWins: true, wantET: true, wantPens: true,
		},
		{
			name: "extra time and penalties ignored after regulation win",
			score: KnockoutScore{HomeGoals: 3, AwayGoals: 0, HomeExtraTimeGoals: ptr(0), AwayExtraTimeGoals: ptr(2),
				HomePenalties: ptr(1), AwayPenalties: ptr(3)},
			homeWins: true,
		},
		{name: "negative goals", score: KnockoutScore{HomeGoals: -1}, wantError: ErrNegativeGoals},
		{name: "draw without extra time", score: KnockoutScore{HomeGoals: 2, AwayGoals: 2}, wantError: ErrExtraTimeRequired},
		{name: "negative extra time", score: KnockoutScore{HomeExtraTimeGoals: ptr(-1), AwayExtraTimeGoals: ptr(0)}, wantError: ErrNegativeGoals},
		{name: "extra time draw without penalties", score: KnockoutScore{HomeExtraTimeGoals: ptr(1), AwayExtraTimeGoals: ptr(1)}, wantError: ErrPenaltiesRequired},
		{
			name: "equal penalties rejected",
			score: KnockoutScore{HomeGoals: 1, AwayGoals: 1, HomeExtraTimeGoals: ptr(0), AwayExtraTimeGoals: ptr(0),
				HomePenalties: ptr(4), AwayPenalties: ptr(4)},
			wantError: ErrPenaltiesEqual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := seededBracket(t)
			reset, err := RecordResult(b, MatchQF1, tt.score)
			m := b.Match(MatchQF1)

			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, models.MatchReady, m.Status(), "rejected score must not change the match")
				assert.Nil(t, b.Semifinals[0].HomeTeam)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, reset)

			want := m.HomeTeam
			if !tt.homeWins {
				want = m.AwayTeam
			}
			require.NotNil(t, m.Winner)
			assert.Equal(t, want.ParticipantID, m.Winner.ParticipantID)
			assert.Equal(t, tt.score.HomeGoals, *m.HomeGoals)
			assert.Equal(t, tt.wantET, m.HomeExtraTimeGoals != nil)
			assert.Equal(t, tt.wantPens, m.HomePenalties != nil)

			// qf1 -> sf1, хозяин
			require.NotNil(t, b.Semifinals[0].HomeTeam)
			assert.Equal(t, want.ParticipantID, b.Semifinals[0].HomeTeam.ParticipantID)
		})
	}
}

func TestRecordResultPendingMatch(t *testing.T) {
	b := seededBracket(t)
	_, err := RecordResult(b, MatchFinal, homeWin())
	assert.ErrorIs(t, err, ErrMatchNotReady)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = RecordResult(b, "qf9", homeWin())
	assert.ErrorIs(t, err, ErrUnknownKnockoutMatch)
}

func playFullBracket(t *testing.T, b *models.Bracket) {
	t.Helper()
	for _, id := range []string{MatchQF1, MatchQF2, MatchQF3, MatchQF4, MatchSF1, MatchSF2, MatchFinal, MatchThirdPlace} {
		_, err := RecordResult(b, id, homeWin())
		require.NoError(t, err, id)
	}
}

func TestRecordResultPropagation(t *testing.T) {
	b := seededBracket(t)
	qf := b.Quarterfinals

	_, err := RecordResult(b, MatchQF2, awayWin())
	require.NoError(t, err)
	assert.Equal(t, qf[1].AwayTeam.ParticipantID, b.Semifinals[0].AwayTeam.ParticipantID)
	_, err = RecordResult(b, MatchQF3, homeWin())
	require.NoError(t, err)
	assert.Equal(t, qf[2].HomeTeam.ParticipantID, b.Semifinals[1].HomeTeam.ParticipantID)
	_, err = RecordResult(b, MatchQF4, homeWin())
	require.NoError(t, err)
	_, err = RecordResult(b, MatchQF1, homeWin())
	require.NoError(t, err)
	assert.Equal(t, models.BracketInProgress, b.State())

	_, err = RecordResult(b, MatchSF1, homeWin())
	require.NoError(t, err)
	_, err = RecordResult(b, MatchSF2, awayWin())
	require.NoError(t, err)

	sf1, sf2 := b.Semifinals[0], b.Semifinals[1]
	assert.Equal(t, sf1.HomeTeam.ParticipantID, b.Final.HomeTeam.ParticipantID)
	assert.Equal(t, sf2.AwayTeam.ParticipantID, b.Final.AwayTeam.ParticipantID)
	assert.Equal(t, sf1.AwayTeam.ParticipantID, b.ThirdPlace.HomeTeam.ParticipantID)
	assert.Equal(t, sf2.HomeTeam.ParticipantID, b.ThirdPlace.AwayTeam.ParticipantID)

	_, err = RecordResult(b, MatchFinal, awayWin())
	require.NoError(t, err)
	_, err = RecordResult(b, MatchThirdPlace, homeWin())
	require.NoError(t, err)

	assert.Equal(t, b.Final.AwayTeam.ParticipantID, b.Champion.ParticipantID)
	assert.Equal(t, b.Final.HomeTeam.ParticipantID, b.RunnerUp.ParticipantID)
	assert.Equal(t, b.ThirdPlace.HomeTeam.ParticipantID, b.ThirdPlaceWinner.ParticipantID)
	assert.Equal(t, models.BracketComplete, b.State())
}

func TestEditingResultCascadesResets(t *testing.T) {
	b := seededBracket(t)
	playFullBracket(t, b)
	require.Equal(t, models.BracketComplete, b.State())

	// тот же победитель: ничего ниже не сбрасывается
	reset, err := RecordResult(b, MatchQF3, KnockoutScore{HomeGoals: 4, AwayGoals: 0})
	require.NoError(t, err)
	assert.Empty(t, reset)
	assert.Equal(t, models.BracketComplete, b.State())

	// новый победитель qf1 меняет хозяина sf1, сброс уходит в финал, матч за третье место и титулы
	reset, err = RecordResult(b, MatchQF1, awayWin())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{MatchSF1, MatchFinal, MatchThirdPlace}, reset)

	sf1 := b.Semifinals[0]
	assert.Equal(t, b.Quarterfinals[0].AwayTeam.ParticipantID, sf1.HomeTeam.ParticipantID)
	assert.Equal(t, models.MatchReady, sf1.Status())
	assert.Nil(t, b.Final.HomeTeam)
	assert.NotNil(t, b.Final.AwayTeam, "sf2 result is untouched")
	assert.Equal(t, models.MatchDecided, b.Semifinals[1].Status())
	assert.Nil(t, b.ThirdPlace.HomeTeam)
	assert.Nil(t, b.Champion)
	assert.Nil(t, b.RunnerUp)
	assert.Nil(t, b.ThirdPlaceWinner)
	assert.Equal(t, models.BracketInProgress, b.State())
}

func TestTopology(t *testing.T) {
	topo := KnockoutTopology()

	down, err := topo.downstream(MatchQF4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{MatchSF2, MatchFinal, MatchThirdPlace, TitleChampion, TitleRunnerUp, TitleThirdPlace}, down)

	down, err = topo.downstream(MatchThirdPlace)
	require.NoError(t, err)
	assert.Equal(t, []string{TitleThirdPlace}, down)

	_, err = topo.downstream("nope")
	assert.ErrorIs(t, err, ErrUnknownKnockoutMatch)

	order, err := topo.order()
	require.NoError(t, err)
	require.Len(t, order, 11)
	pos := make(map[string]int)
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos[MatchQF1], pos[MatchSF1])
	assert.Less(t, pos[MatchSF2], pos[MatchThirdPlace])
	assert.Less(t, pos[MatchFinal], pos[TitleChampion])
}
