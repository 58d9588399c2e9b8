package store

import (
	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// SummaryPath is the backend path for the aggregated dashboard summary.
const SummaryPath = "/api/summary"

// Summary is the read-only store for the dashboard summary. The backend
// aggregates across features, so the client never mutates this collection
// directly; it only re-fetches when a sibling store invalidates the cache.
type Summary struct {
	*Collection[domain.SummaryEntry]
}

// NewSummary creates the summary store and attaches it to the bridge.
func NewSummary(gateway ports.Gateway, bridge *cache.Bridge) *Summary {
	return &Summary{Collection: New[domain.SummaryEntry]("summary", SummaryPath, gateway, bridge)}
}
