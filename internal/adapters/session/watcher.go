package session

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// Watcher observes the session token file with fsnotify. When the file is
// written, created, or removed by another process (a login elsewhere, a
// logout), it reloads the store's cached token and bumps the cache registry
// so long-running sessions re-fetch with the new credential.
//
// It watches the containing directory rather than the file itself: the file
// may not exist yet, and the store replaces it via rename on save.
type Watcher struct {
	store  *Store
	bridge *cache.Bridge
	logger ports.Logger
}

// NewWatcher creates a Watcher for the given token store.
func NewWatcher(store *Store, bridge *cache.Bridge, logger ports.Logger) *Watcher {
	return &Watcher{store: store, bridge: bridge, logger: logger}
}

// Run watches until ctx is canceled. It returns an error only if the watch
// cannot be established.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(domain.ErrWatchFailed, "cause", err.Error())
	}
	defer func() { _ = fsWatcher.Close() }()

	dir := filepath.Dir(w.store.Path())
	if err := fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.With(domain.ErrWatchFailed, "dir", dir), "cause", err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.store.Path() {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.store.Reload()
			// Credential changed outside this process: every store refreshes.
			w.bridge.Invalidated(ctx, nil)
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("token watcher error: " + err.Error())
		}
	}
}
