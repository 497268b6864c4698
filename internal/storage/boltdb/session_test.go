package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/passvault/internal/storage"
)

func TestCachedPin_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetCachedPin(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoCachedPin)
}

func TestCachedPin_SaveAndGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCachedPin(ctx, "123456"))

	pin, err := store.GetCachedPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "123456", pin)
}

func TestSession_Lifecycle(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// По умолчанию сессии нет
	active, err := store.SessionActive(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	// Unlock
	require.NoError(t, store.SetSessionActive(ctx, "token-1"))
	active, err = store.SessionActive(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	// Logout снимает флаг сессии
	require.NoError(t, store.ClearSession(ctx))
	active, err = store.SessionActive(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestClearSession_KeepsCachedPin(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCachedPin(ctx, "4321"))
	require.NoError(t, store.SetSessionActive(ctx, "token-1"))
	require.NoError(t, store.ClearSession(ctx))

	// Logout не удаляет сам PIN
	pin, err := store.GetCachedPin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4321", pin)
}
