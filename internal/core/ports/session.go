package ports

// TokenStore defines the interface for the session credential store.
// The token is an opaque bearer credential; the cache layer only ever reads
// it, while the login/logout commands write it.
//
//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks
type TokenStore interface {
	// Token returns the current session token.
	// Returns "", nil when no session exists.
	Token() (string, error)

	// Save persists a new session token.
	Save(token string) error

	// Clear removes the session token.
	// Clearing an absent token is not an error.
	Clear() error
}
