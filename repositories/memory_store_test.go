package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v, err := s.Get(ctx, "t1", FieldGroups)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "t1", FieldGroups, json.RawMessage(`[{"id":1}]`)))
	require.NoError(t, s.Set(ctx, "t1", FieldMatchHistory, json.RawMessage(`[]`)))
	require.NoError(t, s.Set(ctx, "t2", FieldGroups, json.RawMessage(`[]`)))

	v, err = s.Get(ctx, "t1", FieldGroups)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(v))

	require.NoError(t, s.Delete(ctx, "t1", FieldGroups, FieldMatchHistory))
	v, err = s.Get(ctx, "t1", FieldMatchHistory)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = s.Get(ctx, "t2", FieldGroups)
	require.NoError(t, err)
	assert.NotNil(t, v, "other tournaments are untouched")

	require.NoError(t, s.Clear(ctx, "t2"))
	v, err = s.Get(ctx, "t2", FieldGroups)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStoreRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "", FieldGroups)
	assert.ErrorIs(t, err, ErrEmptyTournamentID)

	err = s.Set(ctx, "t1", Field("bogus"), json.RawMessage(`1`))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestMemoryStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var changes []Change
	unsubscribe, err := s.Subscribe(ctx, "t1", func(c Change) { changes = append(changes, c) })
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "t1", FieldGroups, json.RawMessage(`[]`)))
	require.NoError(t, s.Set(ctx, "other", FieldGroups, json.RawMessage(`[]`)))
	require.NoError(t, s.Delete(ctx, "t1", FieldGroups))
	require.NoError(t, s.Clear(ctx, "t1"))

	require.Len(t, changes, 3)
	assert.Equal(t, FieldGroups, changes[0].Field)
	assert.JSONEq(t, `[]`, string(changes[0].Value))
	assert.Nil(t, changes[1].Value)
	assert.Empty(t, changes[2].Field)

	unsubscribe()
	unsubscribe()
	require.NoError(t, s.Set(ctx, "t1", FieldGroups, json.RawMessage(`[]`)))
	assert.Len(t, changes, 3)
}
