package domain

// SummaryEntry is one row of the dashboard summary as served by the backend.
// The backend aggregates across features (open tasks, finance totals, and the
// health placeholder), so this store is read-only on the client.
type SummaryEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Total int64  `json:"totalCents"`
}

// RecordID implements the Record identity used by the collection store.
func (e SummaryEntry) RecordID() string { return e.ID }
