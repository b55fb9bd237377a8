package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/repair-minder-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "queue.json")

	s, err := NewFileStorage(path)
	require.NoError(t, err)

	second := models.PendingMutation{ID: "b", Key: models.NewEntityKey(models.EntityDevice, "7"), Kind: models.MutationDeviceUpdated, Seq: 2, State: models.MutationPending}
	first := models.PendingMutation{ID: "a", Key: models.NewEntityKey(models.EntityOrder, "1"), Kind: models.MutationOrderUpdated, Seq: 1, State: models.MutationPending, Payload: json.RawMessage(`{"x":1}`)}
	require.NoError(t, s.SaveMutation(ctx, second))
	require.NoError(t, s.SaveMutation(ctx, first))
	require.NoError(t, s.SaveSession(ctx, models.Session{AccessToken: "tok", RefreshToken: "ref"}))
	require.NoError(t, s.SetMeta(ctx, MetaLastSyncAt, "now"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	got, err := reopened.LoadMutations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "order:1", got[0].Key.String())
	assert.Equal(t, "device:7", got[1].Key.String())
	assert.JSONEq(t, `{"x":1}`, string(got[0].Payload))

	session, err := reopened.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", session.AccessToken)

	value, err := reopened.GetMeta(ctx, MetaLastSyncAt)
	require.NoError(t, err)
	assert.Equal(t, "now", value)
}

func TestFileStorage_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStorage(":memory:")
	require.NoError(t, err)

	key := models.NewEntityKey(models.EntityOrder, "1")
	require.NoError(t, s.SaveMutation(ctx, models.PendingMutation{Key: key, EnqueuedAt: time.Now()}))
	require.NoError(t, s.DeleteMutation(ctx, key))
	require.NoError(t, s.DeleteMutation(ctx, key))

	got, err := s.LoadMutations(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	require.NoError(t, s.SaveSession(ctx, models.Session{AccessToken: "x"}))
	require.NoError(t, s.ClearSession(ctx))
	_, err = s.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.GetMeta(ctx, "missing")
	assert.ErrorIs(t, err, ErrMetaNotFound)
}

func TestIsFileStoreDSN(t *testing.T) {
	assert.True(t, isFileStoreDSN(":memory:"))
	assert.True(t, isFileStoreDSN("/var/lib/queue.JSON"))
	assert.False(t, isFileStoreDSN("/var/lib/queue.db"))
}

func TestFileStorage_EntityCache(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")
	pulledAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	s, err := NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.SaveEntities(ctx, []models.EntityRecord{
		{Key: models.NewEntityKey(models.EntityOrder, "2"), Data: json.RawMessage(`{"id":"2","status":"open"}`), PulledAt: pulledAt},
		{Key: models.NewEntityKey(models.EntityOrder, "1"), Data: json.RawMessage(`{"id":"1"}`), PulledAt: pulledAt},
		{Key: models.NewEntityKey(models.EntityClient, "9"), Data: json.RawMessage(`{"id":9}`), PulledAt: pulledAt},
	}))
	// a later pull replaces the stored copy
	require.NoError(t, s.SaveEntities(ctx, []models.EntityRecord{
		{Key: models.NewEntityKey(models.EntityOrder, "2"), Data: json.RawMessage(`{"id":"2","status":"closed"}`), PulledAt: pulledAt.Add(time.Minute)},
	}))
	require.NoError(t, s.SaveEntities(ctx, nil))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	orders, err := reopened.LoadEntities(ctx, models.EntityOrder)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order:1", orders[0].Key.String())
	assert.JSONEq(t, `{"id":"2","status":"closed"}`, string(orders[1].Data))
	assert.True(t, orders[1].PulledAt.Equal(pulledAt.Add(time.Minute)))

	clients, err := reopened.LoadEntities(ctx, models.EntityClient)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	tickets, err := reopened.LoadEntities(ctx, models.EntityTicket)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
