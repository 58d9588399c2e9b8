package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kxvin1/life-dashboard/internal/adapters/session"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "token"))
}

func TestStore_TokenIsEmptyWhenFileAbsent(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Token()
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestStore_SaveThenToken(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("secret-token"))

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "secret-token", token)
}

func TestStore_SaveTrimsWhitespace(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("  secret-token\n"))

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "secret-token", token)
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	store := newTestStore(t)

	require.ErrorIs(t, store.Save(""), domain.ErrEmptyToken)
	require.ErrorIs(t, store.Save("   \n"), domain.ErrEmptyToken)
}

func TestStore_SaveUsesPrivatePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("secret-token"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())
}

func TestStore_SaveCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store := session.NewStore(path)

	require.NoError(t, store.Save("secret-token"))

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "secret-token", token)
}

func TestStore_ClearRemovesToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("secret-token"))

	require.NoError(t, store.Clear())

	token, err := store.Token()
	require.NoError(t, err)
	require.Empty(t, token)

	_, err = os.Stat(store.Path())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestStore_ReloadPicksUpExternalChange(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("first"))

	// Another process replaces the file. The cached value survives until
	// Reload drops it.
	require.NoError(t, os.WriteFile(store.Path(), []byte("second\n"), domain.PrivateFilePerm))

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "first", token)

	store.Reload()

	token, err = store.Token()
	require.NoError(t, err)
	require.Equal(t, "second", token)
}
