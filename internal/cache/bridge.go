package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// Bridge connects domain data stores to the Registry. A mutation performed
// through one store invalidates the registry, and the bridge refreshes every
// *other* attached store during the synchronous notification pass. The
// originating store only records the new version as seen, which prevents the
// redundant immediate self-refetch after its own mutation.
type Bridge struct {
	registry *Registry
	logger   ports.Logger

	mu     sync.Mutex
	origin ports.Refresher
	ctx    context.Context
}

// NewBridge creates a Bridge on top of the given registry.
func NewBridge(registry *Registry, logger ports.Logger) *Bridge {
	return &Bridge{registry: registry, logger: logger}
}

// Registry returns the underlying registry.
func (b *Bridge) Registry() *Registry {
	return b.registry
}

// Attach subscribes the store to invalidation notifications and returns a
// detach function. Refresh failures are logged and never propagated: the
// store keeps its previous collection (stale-but-available) and the next
// bump retries.
func (b *Bridge) Attach(s ports.Refresher) (detach func()) {
	return b.registry.Subscribe(func(version int64) {
		b.mu.Lock()
		origin, ctx := b.origin, b.ctx
		b.mu.Unlock()

		if origin == s {
			s.MarkSeen(version)
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}
		if err := s.Refresh(ctx); err != nil {
			b.logger.Warn(fmt.Sprintf("store %s kept stale data: refresh after invalidation failed: %v", s.Name(), err))
		}
	})
}

// Invalidated bumps the registry on behalf of origin. Pass a nil origin when
// the invalidation was not caused by a store mutation (e.g. a credential
// change); every attached store then refreshes.
func (b *Bridge) Invalidated(ctx context.Context, origin ports.Refresher) {
	b.mu.Lock()
	b.origin = origin
	b.ctx = ctx
	b.mu.Unlock()

	b.registry.Invalidate()

	b.mu.Lock()
	b.origin = nil
	b.ctx = nil
	b.mu.Unlock()
}
