package session_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kxvin1/life-dashboard/internal/adapters/session"
	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/ports/mocks"
)

func TestWatcher_TokenFileChangeBumpsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := cache.NewRegistry()
	bridge := cache.NewBridge(registry, mocks.NewMockLogger(ctrl))

	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	watcher := session.NewWatcher(store, bridge, mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	// Give the watch a moment to establish before touching the file.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, store.Save("fresh-token"))

	require.Eventually(t, func() bool {
		return registry.Version() > 0
	}, 2*time.Second, 10*time.Millisecond)

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "fresh-token", token)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := cache.NewRegistry()
	bridge := cache.NewBridge(registry, mocks.NewMockLogger(ctrl))

	dir := t.TempDir()
	store := session.NewStore(filepath.Join(dir, "token"))
	watcher := session.NewWatcher(store, bridge, mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	time.Sleep(200 * time.Millisecond)

	sibling := session.NewStore(filepath.Join(dir, "unrelated"))
	require.NoError(t, sibling.Save("noise"))

	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int64(0), registry.Version())

	cancel()
	require.NoError(t, <-done)
}
