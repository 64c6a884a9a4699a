package brackets

import (
	"testing"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finals(frames []RevealFrame) []RevealFrame {
	var out []RevealFrame
	for _, f := range frames {
		if f.Final {
			out = append(out, f)
		}
	}
	return out
}

func TestRevealOrderingFrames(t *testing.T) {
	ps := makeParticipants(t, 6)
	// перевернём порядок, показ должен идти по Order, а не по позиции в списке
	for i := range ps {
		order := len(ps) - i
		ps[i].Order = &order
	}
	ps = append(ps, models.Participant{Name: "No order"})

	frames := RevealOrderingFrames(ps, NewSeededRandomizer(1))
	require.Len(t, frames, OrderingShuffleFrames+6)
	for _, f := range frames[:OrderingShuffleFrames] {
		assert.False(t, f.Final)
		assert.Len(t, f.Display, 6)
	}

	got := finals(frames)
	require.Len(t, got, 6)
	for i, f := range got {
		assert.Equal(t, i+1, f.Order)
		assert.Equal(t, i+1, f.Step)
		assert.Equal(t, ps[5-i].ID, f.Participant.ID)
	}
}

func TestRevealClubFrames(t *testing.T) {
	ps := makeParticipants(t, 4)
	ps[2].Club = nil
	available := models.FullClubPool()[10:12]

	frames := RevealClubFrames(ps, available)
	got := finals(frames)
	require.Len(t, got, 3)
	assert.Len(t, frames, 3*(ClubSpinFrames+1))

	for i, f := range got {
		require.NotNil(t, f.Club)
		assert.Equal(t, f.Participant.Club.ID, f.Club.ID)
		assert.Equal(t, i+1, f.Step)
	}
	assert.Equal(t, ps[3].ID, got[2].Participant.ID)
}

func TestRevealGroupFramesFollowPersistedDraw(t *testing.T) {
	draw, err := DrawGroups(makeParticipants(t, 18), DrawConfig{GroupCount: 3, GroupSize: 6}, NewSeededRandomizer(8))
	require.NoError(t, err)

	frames := RevealGroupFrames(draw.Groups, NewSeededRandomizer(99))
	assert.Len(t, frames, 18*(GroupDrawShuffleFrames+1))

	got := finals(frames)
	require.Len(t, got, 18)
	for i, f := range got {
		assert.Equal(t, draw.Assignments[i].Participant.ID, f.Participant.ID)
		assert.Equal(t, draw.Assignments[i].GroupID, f.GroupID)
	}

	// перед первым шагом показываются все 18 клубов, перед последним - один
	assert.Len(t, frames[0].Display, 18)
	assert.Len(t, frames[len(frames)-2].Display, 1)
}

func TestRevealKindValid(t *testing.T) {
	assert.True(t, RevealGroups.Valid())
	assert.False(t, RevealKind("bracket").Valid())
}
