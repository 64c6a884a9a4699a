package repositories

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeParticipantsCanonical(t *testing.T) {
	id := uuid.New()
	raw := json.RawMessage(`[{"id":"` + id.String() + `","name":"Ann","avatar":{"id":3,"emoji":"⚽","color":"#fff"},"order":2}]`)

	list, migrated, err := NormalizeParticipants(raw, NewLegacyIDMap())
	require.NoError(t, err)
	assert.False(t, migrated)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, 2, *list[0].Order)
	assert.Equal(t, 3, list[0].Avatar.ID)
}

func TestNormalizeParticipantsLegacyShapes(t *testing.T) {
	ids := NewLegacyIDMap()

	names, migrated, err := NormalizeParticipants(json.RawMessage(`["Ann", "Bob"]`), ids)
	require.NoError(t, err)
	assert.True(t, migrated)
	require.Len(t, names, 2)
	assert.Equal(t, "Ann", names[0].Name)
	assert.NotEqual(t, uuid.Nil, names[0].ID)
	require.NotNil(t, names[1].Avatar)

	participants, migrated, err := NormalizeParticipants(json.RawMessage(`[
		{"name":"Ann","order":1},
		{"id":17,"name":"Cid","customImage":"https://img.example/c.png"},
		{"userId":"user-1","id":"x","name":"Dan"}
	]`), ids)
	require.NoError(t, err)
	assert.True(t, migrated)
	require.Len(t, participants, 3)

	assert.Equal(t, names[0].ID, participants[0].ID, "same name maps to the same id within one load")
	require.NotNil(t, participants[1].CustomImage)
	assert.Equal(t, "https://img.example/c.png", *participants[1].CustomImage)

	again, _, err := NormalizeParticipants(json.RawMessage(`[{"id":17,"name":"Cid"},{"userId":"user-1","name":"Dan"}]`), ids)
	require.NoError(t, err)
	assert.Equal(t, participants[1].ID, again[0].ID)
	assert.Equal(t, participants[2].ID, again[1].ID)
}

func TestNormalizeParticipantsEmptyAndBroken(t *testing.T) {
	list, migrated, err := NormalizeParticipants(nil, NewLegacyIDMap())
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Nil(t, list)

	_, _, err = NormalizeParticipants(json.RawMessage(`{"name":"Ann"}`), NewLegacyIDMap())
	assert.Error(t, err)
}

func TestNormalizeGroupsSharesIDs(t *testing.T) {
	ids := NewLegacyIDMap()
	participants, _, err := NormalizeParticipants(json.RawMessage(`[{"id":"p1","name":"Ann"}]`), ids)
	require.NoError(t, err)

	groups, migrated, err := NormalizeGroups(json.RawMessage(`[{"id":1,"name":"Group A","teams":[{"id":"p1","name":"Ann"}]},{"id":2,"name":"Group B"}]`), ids)
	require.NoError(t, err)
	assert.True(t, migrated)
	require.Len(t, groups, 2)
	assert.Equal(t, participants[0].ID, groups[0].Teams[0].ID)
	assert.NotNil(t, groups[1].Teams)
}

func TestLegacyIDMapResolveDeterministic(t *testing.T) {
	first, second := NewLegacyIDMap(), NewLegacyIDMap()

	assert.Equal(t, first.Resolve("p1", "Ann"), second.Resolve("p1", "Ann"))
	assert.Equal(t, first.Resolve("", " Ann "), second.Resolve("", "ann"))
	assert.NotEqual(t, first.Resolve("p1", ""), first.Resolve("p2", ""))
	assert.NotEqual(t, first.Resolve("ann", ""), first.Resolve("", "ann"), "id and name keys do not collide")

	id := uuid.New()
	assert.Equal(t, id, first.Resolve(id.String(), "Ann"))
}
