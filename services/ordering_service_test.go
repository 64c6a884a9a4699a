package services

import (
	"context"
	"testing"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/Dosada05/cup-organizer/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	added := env.addParticipants(t, 10)

	ordered, err := env.Ordering.AssignOrder(ctx, tid)
	require.NoError(t, err)
	require.Len(t, ordered, 10)

	ids := make(map[string]bool)
	for i, p := range ordered {
		require.NotNil(t, p.Order)
		assert.Equal(t, i+1, *p.Order)
		assert.Nil(t, p.Club)
		ids[p.ID.String()] = true
	}
	for _, p := range added {
		assert.True(t, ids[p.ID.String()], "ordering is a permutation of the roster")
	}

	_, err = env.Ordering.AssignOrder(ctx, tid)
	assert.ErrorIs(t, err, ErrAlreadyOrdered)

	snap, err := env.Snapshot.Snapshot(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, models.StageClubs, snap.Stage)
}

func TestAssignOrderNeedsTwoParticipants(t *testing.T) {
	env := newTestEnv(t)
	env.addParticipants(t, 1)
	_, err := env.Ordering.AssignOrder(context.Background(), tid)
	require.ErrorIs(t, err, ErrNotEnoughParticipants)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestResetOrderingClearsEverythingAfterIntake(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	groups := env.drawn(t, 18)
	env.playGroups(t, groups)
	_, err := env.Bracket.Bracket(ctx, tid)
	require.NoError(t, err)

	require.NoError(t, env.Ordering.ResetOrdering(ctx, tid))

	for _, f := range []repositories.Field{
		repositories.FieldParticipants, repositories.FieldAvailableClubs, repositories.FieldGroups,
		repositories.FieldGroupStandings, repositories.FieldMatchHistory, repositories.FieldKnockoutMatches,
	} {
		raw, err := env.store.Get(ctx, tid, f)
		require.NoError(t, err)
		assert.Nil(t, raw, f)
	}
	names, err := env.repo.ParticipantNames(ctx, tid)
	require.NoError(t, err)
	assert.Len(t, names, 18)

	_, err = env.Ordering.AssignOrder(ctx, tid)
	assert.NoError(t, err, "ordering can run again after reset")
}
