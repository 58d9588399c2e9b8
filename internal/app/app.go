// Package app implements the application layer for the dashboard client.
package app

import (
	"context"
	"io"
	"time"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
	"github.com/Kxvin1/life-dashboard/internal/store"
)

// App wires the domain data stores to the cache layer and exposes the
// operations the CLI consumes. Each store attaches to the bridge at
// construction, so a mutation through any one of them re-fetches the others.
type App struct {
	cfg    *domain.Config
	bridge *cache.Bridge
	tokens ports.TokenStore
	logger ports.Logger

	tasks      *store.Tasks
	categories *store.Categories
	summary    *store.Summary

	sessionWatch func(ctx context.Context) error
}

// New creates a new App instance.
func New(cfg *domain.Config, gateway ports.Gateway, bridge *cache.Bridge, tokens ports.TokenStore, logger ports.Logger) *App {
	return &App{
		cfg:        cfg,
		bridge:     bridge,
		tokens:     tokens,
		logger:     logger,
		tasks:      store.NewTasks(gateway, bridge),
		categories: store.NewCategories(gateway, bridge),
		summary:    store.NewSummary(gateway, bridge),
	}
}

// WithSessionWatcher attaches a long-running session watcher used by
// follow mode to pick up external credential changes.
func (a *App) WithSessionWatcher(run func(ctx context.Context) error) *App {
	a.sessionWatch = run
	return a
}

// Tasks returns the tasks store.
func (a *App) Tasks() *store.Tasks { return a.tasks }

// Categories returns the categories store.
func (a *App) Categories() *store.Categories { return a.categories }

// Summary returns the summary store.
func (a *App) Summary() *store.Summary { return a.summary }

// ListTasks fetches the task collection on first use and returns a snapshot.
func (a *App) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if err := a.ensureLoaded(ctx, a.tasks.Collection); err != nil {
		return nil, err
	}
	return a.tasks.Items(), nil
}

// AddTask creates a task and invalidates sibling stores.
func (a *App) AddTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	return a.tasks.Add(ctx, input)
}

// CompleteTask marks a task as done.
func (a *App) CompleteTask(ctx context.Context, id string) (domain.Task, error) {
	return a.tasks.SetDone(ctx, id, true)
}

// ReopenTask marks a task as not done.
func (a *App) ReopenTask(ctx context.Context, id string) (domain.Task, error) {
	return a.tasks.SetDone(ctx, id, false)
}

// RemoveTask deletes a task.
func (a *App) RemoveTask(ctx context.Context, id string) error {
	return a.tasks.Delete(ctx, id)
}

// ListCategories fetches the category collection on first use and returns a snapshot.
func (a *App) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := a.ensureLoaded(ctx, a.categories.Collection); err != nil {
		return nil, err
	}
	return a.categories.Items(), nil
}

// AddCategory creates a finance category.
func (a *App) AddCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	return a.categories.Add(ctx, input)
}

// RemoveCategory deletes a finance category.
func (a *App) RemoveCategory(ctx context.Context, id string) error {
	return a.categories.Delete(ctx, id)
}

// SummaryEntries fetches the dashboard summary on first use and returns a snapshot.
func (a *App) SummaryEntries(ctx context.Context) ([]domain.SummaryEntry, error) {
	if err := a.ensureLoaded(ctx, a.summary.Collection); err != nil {
		return nil, err
	}
	return a.summary.Items(), nil
}

// Login stores the session token and invalidates all stores: whatever was
// cached belongs to the previous session.
func (a *App) Login(ctx context.Context, token string) error {
	if err := a.tokens.Save(token); err != nil {
		return err
	}
	a.bridge.Invalidated(ctx, nil)
	return nil
}

// Logout clears the session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	a.bridge.Invalidated(ctx, nil)
	return nil
}

// FollowSummary renders the summary to out, then keeps it fresh until ctx is
// canceled: a poll ticker re-fetches the summary, and cache invalidations
// (mutations, external credential changes) re-render immediately. Renders
// are skipped while the collection fingerprint is unchanged.
func (a *App) FollowSummary(ctx context.Context, out io.Writer, interval time.Duration) error {
	if a.sessionWatch != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := a.sessionWatch(watchCtx); err != nil {
				a.logger.Warn("session watcher stopped: " + err.Error())
			}
		}()
	}

	entries, err := a.SummaryEntries(ctx)
	if err != nil {
		return err
	}
	if err := RenderSummary(out, entries); err != nil {
		return err
	}
	last := a.summary.Fingerprint()

	bumps := make(chan struct{}, 1)
	unsubscribe := a.bridge.Registry().Subscribe(func(int64) {
		select {
		case bumps <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.summary.Refresh(ctx); err != nil {
				// Stale-but-available: keep the last rendered summary.
				a.logger.Warn("summary refresh failed: " + err.Error())
				continue
			}
		case <-bumps:
			// Stores already re-fetched during the invalidation pass.
		}

		if fp := a.summary.Fingerprint(); fp != last {
			last = fp
			if err := RenderSummary(out, a.summary.Items()); err != nil {
				return err
			}
		}
	}
}

// ensureLoaded fetches a collection that has never been loaded, and retries
// one whose last fetch failed. Loaded stores serve their snapshot as-is;
// invalidations keep them fresh.
func (a *App) ensureLoaded(ctx context.Context, c interface {
	State() domain.StoreState
	Refresh(ctx context.Context) error
}) error {
	switch c.State() {
	case domain.StateIdle, domain.StateFailed:
		return c.Refresh(ctx)
	default:
		return nil
	}
}
