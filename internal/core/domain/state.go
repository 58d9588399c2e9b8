package domain

// StoreState is the lifecycle state of a domain data store.
type StoreState uint8

const (
	// StateIdle indicates the store has never fetched.
	StateIdle StoreState = iota
	// StateLoading indicates a fetch is in flight.
	StateLoading
	// StateLoaded indicates the collection reflects the last successful fetch.
	StateLoaded
	// StateFailed indicates the last fetch failed; the previous collection is retained.
	StateFailed
)

// String returns the human-readable name of the state.
func (s StoreState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
