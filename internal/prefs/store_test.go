// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get("dark_mode")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStore_SetGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("dark_mode", "true"))

	value, ok, err := store.Get("dark_mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestStore_Overwrite(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("dark_mode", "true"))
	require.NoError(t, store.Set("dark_mode", "false"))

	value, _, err := store.Get("dark_mode")
	require.NoError(t, err)
	assert.Equal(t, "false", value)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("dark_mode", "true"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("dark_mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestStore_UseAfterClose(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Close())

	_, _, err := store.Get("dark_mode")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, store.Set("dark_mode", "true"), ErrClosed)
}
