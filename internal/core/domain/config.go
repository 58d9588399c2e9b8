package domain

import "time"

// DefaultAPIURL is used when no backend URL is configured.
const DefaultAPIURL = "http://localhost:8080"

// DefaultRequestTimeout bounds each gateway request.
const DefaultRequestTimeout = 30 * time.Second

// Config holds the resolved client configuration.
type Config struct {
	// APIURL is the base URL of the dashboard backend, without trailing slash.
	APIURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// TokenPath is the location of the session token file.
	TokenPath string

	// TraceEnabled turns on OTel span collection in the gateway.
	TraceEnabled bool
}
