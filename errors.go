package uchttp

import "errors"

// Errors returned by package-level setup functions. The parser state
// machine itself never surfaces a Go error for malformed request bytes —
// that is protocol data, not a programming error, and is routed to the
// embedder's error callback per the Error Router (see state.go).
var (
	// ErrNoResources indicates Initialize was called with an empty
	// resources table. At least one resource is required so the
	// abs_path search engine has a non-empty table to run over.
	ErrNoResources = errors.New("uchttp: resources table must not be empty")

	// ErrNilSend indicates Initialize was called without a send
	// callback. Every response byte the framer produces is delivered
	// through it.
	ErrNilSend = errors.New("uchttp: send callback must not be nil")

	// ErrNilOnError indicates Initialize was called without an error
	// callback.
	ErrNilOnError = errors.New("uchttp: onError callback must not be nil")
)
