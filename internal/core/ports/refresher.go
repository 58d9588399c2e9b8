package ports

import "context"

// Refresher is implemented by domain data stores that can re-fetch their
// collection from the backend. The subscription bridge drives it whenever
// the cache version is bumped by a sibling store.
//
//go:generate mockgen -source=refresher.go -destination=mocks/mock_refresher.go -package=mocks
type Refresher interface {
	// Name identifies the store in logs.
	Name() string

	// Refresh replaces the collection from the backend. On failure the
	// previous collection is retained and the error is returned.
	Refresh(ctx context.Context) error

	// MarkSeen records a cache version as already reflected by the store,
	// so the bridge can skip the refresh the store itself just caused.
	MarkSeen(version int64)
}
