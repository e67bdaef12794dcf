package repository

import (
	"context"
	"testing"

	domainRepo "medicare-plus/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertClientStorage(t *testing.T, storage domainRepo.ClientStorage) {
	ctx := context.Background()

	_, found, err := storage.Get(ctx, "client-a", "invoiceNumber")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Set(ctx, "client-a", "invoiceNumber", "INV-1"))
	require.NoError(t, storage.Set(ctx, "client-a", "receiptId", "RCP-1"))

	value, found, err := storage.Get(ctx, "client-a", "invoiceNumber")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "INV-1", value)

	// storage contexts are isolated per client
	_, found, err = storage.Get(ctx, "client-b", "invoiceNumber")
	require.NoError(t, err)
	assert.False(t, found)

	// last write wins
	require.NoError(t, storage.Set(ctx, "client-a", "invoiceNumber", "INV-2"))
	value, _, err = storage.Get(ctx, "client-a", "invoiceNumber")
	require.NoError(t, err)
	assert.Equal(t, "INV-2", value)

	require.NoError(t, storage.Delete(ctx, "client-a", "invoiceNumber"))
	_, found, err = storage.Get(ctx, "client-a", "invoiceNumber")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err = storage.Get(ctx, "client-a", "receiptId")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "RCP-1", value)

	// the first stored value wins
	stored, err := storage.SetIfAbsent(ctx, "client-a", "receiptId", "RCP-2")
	require.NoError(t, err)
	assert.Equal(t, "RCP-1", stored)

	stored, err = storage.SetIfAbsent(ctx, "client-a", "controlUnitNo", "KRACU1")
	require.NoError(t, err)
	assert.Equal(t, "KRACU1", stored)
	value, found, err = storage.Get(ctx, "client-a", "controlUnitNo")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "KRACU1", value)

	require.NoError(t, storage.Delete(ctx, "client-a"))
}

func TestMemoryClientStorage(t *testing.T) {
	assertClientStorage(t, NewMemoryClientStorage())
}

func TestRedisClientStorage(t *testing.T) {
	mr, client := newTestRedis(t)
	storage := NewRedisClientStorage(client)
	assertClientStorage(t, storage)

	assert.True(t, mr.Exists("storage:client-a:receiptId"))
	assert.Equal(t, int64(0), int64(mr.TTL("storage:client-a:receiptId")))
}
