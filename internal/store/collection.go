// Package store implements the domain data stores: feature-scoped in-memory
// collections kept in sync with the backend through the fetch gateway and
// the cache invalidation bridge.
package store

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// Record is the constraint for entities held by a Collection.
type Record interface {
	RecordID() string
}

// Collection is the generic domain data store: it exclusively owns an
// in-memory slice of records, exposes CRUD operations that go through the
// gateway, and invalidates the cache registry after every successful
// mutation. It attaches itself to the bridge at construction so that
// mutations performed through sibling stores trigger a re-fetch.
//
// A failed refresh keeps the previous collection visible
// (stale-but-available) rather than flickering the UI to empty.
type Collection[T Record] struct {
	name    string
	path    string
	gateway ports.Gateway
	bridge  *cache.Bridge

	mu       sync.Mutex
	items    []T
	state    domain.StoreState
	lastErr  error
	lastSeen int64
	seq      uint64

	group  singleflight.Group
	detach func()
}

// New creates a Collection for the given backend collection path (e.g.
// "/api/tasks") and attaches it to the bridge.
func New[T Record](name, path string, gateway ports.Gateway, bridge *cache.Bridge) *Collection[T] {
	c := &Collection[T]{
		name:    name,
		path:    path,
		gateway: gateway,
		bridge:  bridge,
		state:   domain.StateIdle,
	}
	c.detach = bridge.Attach(c)
	return c
}

// Name implements ports.Refresher.
func (c *Collection[T]) Name() string { return c.name }

// MarkSeen implements ports.Refresher. The bridge calls it instead of
// Refresh for the store that caused the invalidation.
func (c *Collection[T]) MarkSeen(version int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version > c.lastSeen {
		c.lastSeen = version
	}
}

// Refresh replaces the collection from the backend.
//
// Concurrent calls coalesce into a single request. A refresh that has been
// superseded by a newer one discards its result instead of overwriting the
// newer collection (latest request wins).
func (c *Collection[T]) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (any, error) {
		c.mu.Lock()
		c.seq++
		seq := c.seq
		c.state = domain.StateLoading
		version := c.bridge.Registry().Version()
		c.mu.Unlock()

		var fetched []T
		err := c.gateway.Request(ctx, http.MethodGet, c.path, nil, &fetched)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.seq != seq {
			// A newer refresh started while this one was in flight.
			return nil, nil
		}
		if err != nil {
			c.state = domain.StateFailed
			c.lastErr = err
			return nil, err
		}
		c.items = fetched
		c.state = domain.StateLoaded
		c.lastErr = nil
		if version > c.lastSeen {
			c.lastSeen = version
		}
		return nil, nil
	})
	return err
}

// Create posts input to the backend, applies the returned record to the
// collection, and invalidates the registry so sibling stores refresh. On
// failure the collection is left untouched and the error is surfaced.
func (c *Collection[T]) Create(ctx context.Context, input any) (T, error) {
	var created T
	if err := c.gateway.Request(ctx, http.MethodPost, c.path, input, &created); err != nil {
		return created, err
	}

	c.mu.Lock()
	c.upsert(created)
	c.mu.Unlock()

	c.bridge.Invalidated(ctx, c)
	return created, nil
}

// Update patches the record with the given id and applies the server's
// returned record to the collection, then invalidates the registry.
func (c *Collection[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	var updated T
	if err := c.gateway.Request(ctx, http.MethodPatch, c.path+"/"+id, patch, &updated); err != nil {
		return updated, err
	}

	c.mu.Lock()
	c.upsert(updated)
	c.mu.Unlock()

	c.bridge.Invalidated(ctx, c)
	return updated, nil
}

// Delete removes the record with the given id on the backend and from the
// collection, then invalidates the registry.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.gateway.Request(ctx, http.MethodDelete, c.path+"/"+id, nil, nil); err != nil {
		return err
	}

	c.mu.Lock()
	c.items = slices.DeleteFunc(c.items, func(r T) bool {
		return r.RecordID() == id
	})
	c.mu.Unlock()

	c.bridge.Invalidated(ctx, c)
	return nil
}

// Items returns a snapshot of the collection.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Get returns the record with the given id from the local collection.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.items {
		if r.RecordID() == id {
			return r, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

// State returns the store's lifecycle state.
func (c *Collection[T]) State() domain.StoreState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error from the last failed fetch, or nil.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Fingerprint returns a hash of the collection's current contents. Callers
// polling for changes can compare fingerprints instead of diffing records.
func (c *Collection[T]) Fingerprint() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := xxhash.New()
	for _, r := range c.items {
		b, err := json.Marshal(r)
		if err != nil {
			continue
		}
		_, _ = d.Write(b)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Close detaches the store from the bridge. The store receives no further
// invalidation notifications; its collection is left as-is.
func (c *Collection[T]) Close() {
	c.detach()
}

// upsert replaces the record with a matching id, or appends. Caller holds mu.
func (c *Collection[T]) upsert(rec T) {
	for i, r := range c.items {
		if r.RecordID() == rec.RecordID() {
			c.items[i] = rec
			return
		}
	}
	c.items = append(c.items, rec)
}
