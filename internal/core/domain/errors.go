package domain

import "go.trai.ch/zerr"

var (
	// ErrUnauthenticated is returned when no session credential is available.
	// Callers should redirect the user to login rather than retry.
	ErrUnauthenticated = zerr.New("not logged in")

	// ErrRequestFailed is returned when the backend responds with a non-2xx status.
	// The error carries the status code and the server-supplied message.
	ErrRequestFailed = zerr.New("request failed")

	// ErrNetwork is returned when the backend produces no response at all.
	// A manual retry is safe; the client applies no automatic backoff.
	ErrNetwork = zerr.New("network error")

	// ErrDecodeFailed is returned when a 2xx response body cannot be decoded as JSON.
	ErrDecodeFailed = zerr.New("failed to decode response")

	// ErrNotFound is returned when a record is missing from a store's collection.
	ErrNotFound = zerr.New("record not found")

	// ErrTokenReadFailed is returned when the session token file cannot be read.
	ErrTokenReadFailed = zerr.New("failed to read session token")

	// ErrTokenWriteFailed is returned when the session token file cannot be written.
	ErrTokenWriteFailed = zerr.New("failed to write session token")

	// ErrTokenClearFailed is returned when the session token file cannot be removed.
	ErrTokenClearFailed = zerr.New("failed to clear session token")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWatchFailed is returned when the session token watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch session token file")

	// ErrEmptyToken is returned when login is attempted with an empty token.
	ErrEmptyToken = zerr.New("token must not be empty")
)
