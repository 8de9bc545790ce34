package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures (connection refused,
	// timeouts) as opposed to responses the server actually produced.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound corresponds to a 404 response.
	ErrNotFound = errors.New("not found")

	// ErrServer covers any other non-2xx response or success=false body.
	ErrServer = errors.New("server error")
)
