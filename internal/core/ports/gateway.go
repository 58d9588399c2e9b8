package ports

import "context"

// Gateway defines the interface for making authenticated JSON requests
// against the dashboard backend. Implementations attach the session
// credential and the current cache-bust parameter; callers own the shape of
// body and out.
//
//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks
type Gateway interface {
	// Request issues an HTTP request and decodes the JSON response into out.
	// A nil out discards the response body. A nil body sends no payload.
	Request(ctx context.Context, method, path string, body, out any) error
}
