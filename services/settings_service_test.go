package services

import (
	"context"
	"testing"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	settings, err := env.Settings.Settings(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)

	settings.ClubSelectionEnabled = false
	settings.GroupCount, settings.GroupSize = 4, 4
	updated, err := env.Settings.UpdateSettings(ctx, tid, settings)
	require.NoError(t, err)
	assert.Equal(t, settings, updated)

	stored, err := env.Settings.Settings(ctx, tid)
	require.NoError(t, err)
	assert.Equal(t, settings, stored)
}

func TestUpdateSettingsRules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	bad := models.DefaultSettings()
	bad.GroupSize = 0
	_, err := env.Settings.UpdateSettings(ctx, tid, bad)
	require.ErrorIs(t, err, ErrInvalidSettings)
	assert.ErrorIs(t, err, ErrValidationFailed)

	env.addParticipants(t, 5)
	small := models.DefaultSettings()
	small.GroupCount, small.GroupSize = 2, 2
	_, err = env.Settings.UpdateSettings(ctx, tid, small)
	assert.ErrorIs(t, err, ErrRosterFull)

	_, err = env.Ordering.AssignOrder(ctx, tid)
	require.NoError(t, err)
	_, err = env.Clubs.AssignRemainingClubs(ctx, tid)
	require.NoError(t, err)
	_, err = env.Draw.DrawGroups(ctx, tid)
	require.NoError(t, err)

	resized := models.DefaultSettings()
	resized.GroupCount = 2
	_, err = env.Settings.UpdateSettings(ctx, tid, resized)
	assert.ErrorIs(t, err, ErrAlreadyDrawn)

	toggles := models.DefaultSettings()
	toggles.GroupDrawEnabled = false
	_, err = env.Settings.UpdateSettings(ctx, tid, toggles)
	assert.NoError(t, err, "toggles can change at any stage")
}
