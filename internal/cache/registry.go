// Package cache implements the client-side cache invalidation layer: a
// process-wide version counter with ordered subscriber notification, and the
// bridge that keeps domain data stores synchronized through it.
package cache

import (
	"slices"
	"strconv"
	"sync"
)

// Registry is a monotonic cache version counter with an ordered subscriber
// set. One instance is constructed per running application and injected into
// every component that consults it; there is no package-level singleton.
//
// Version 0 means "never invalidated": the cache-bust accessors return empty
// strings so default HTTP caching behavior applies until the first bump.
type Registry struct {
	mu       sync.Mutex
	version  int64
	subs     []*subscription
	pending  int
	draining bool
}

type subscription struct {
	fn     func(version int64)
	active bool
}

// NewRegistry creates a Registry with version 0 and no subscribers.
func NewRegistry() *Registry {
	return &Registry{}
}

// Invalidate increments the cache version by exactly 1 and synchronously
// notifies every currently registered subscriber in registration order.
//
// Re-entrant calls from inside a subscriber callback do not recurse: they
// enqueue another bump, and the outermost call drains the queue FIFO once the
// in-progress notification pass completes. Every increment is delivered
// exactly once.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.pending++
	if r.draining {
		r.mu.Unlock()
		return
	}
	r.draining = true
	for r.pending > 0 {
		r.pending--
		r.version++
		version := r.version

		// Snapshot in registration order. Subscribers added during this
		// pass only see subsequent bumps; subscribers removed during this
		// pass are skipped via the active check below.
		snapshot := slices.Clone(r.subs)
		r.mu.Unlock()

		for _, sub := range snapshot {
			r.mu.Lock()
			active := sub.active
			r.mu.Unlock()
			if active {
				sub.fn(version)
			}
		}
		r.mu.Lock()
	}
	r.draining = false
	r.mu.Unlock()
}

// Subscribe registers a callback invoked on every future invalidation and
// returns its unsubscribe function. Registering the same callback twice
// creates two independent subscriptions; deduplication is the caller's
// responsibility. Unsubscribing is idempotent and guarantees the callback
// receives no further notifications, including bumps still being delivered
// when the unsubscribe happens.
func (r *Registry) Subscribe(fn func(version int64)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub := &subscription{fn: fn, active: true}
	r.subs = append(r.subs, sub)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if !sub.active {
			return
		}
		sub.active = false
		r.subs = slices.DeleteFunc(r.subs, func(s *subscription) bool {
			return s == sub
		})
	}
}

// Version returns the current cache version. Pure read, no side effects.
func (r *Registry) Version() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// BustParam returns the cache-bust fragment for a path that already carries
// a query string: "" at version 0, else "&_v=<version>".
func (r *Registry) BustParam() string {
	v := r.Version()
	if v == 0 {
		return ""
	}
	return "&_v=" + strconv.FormatInt(v, 10)
}

// BustQuery returns the cache-bust fragment for a path without a query
// string: "" at version 0, else "?_v=<version>".
func (r *Registry) BustQuery() string {
	v := r.Version()
	if v == 0 {
		return ""
	}
	return "?_v=" + strconv.FormatInt(v, 10)
}
