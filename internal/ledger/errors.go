package ledger

import "errors"

// Common remote ledger errors
var (
	// ErrNotFound indicates that the requested document doesn't exist
	ErrNotFound = errors.New("document not found")

	// ErrUnknownDomain indicates an unrecognized PIN domain
	ErrUnknownDomain = errors.New("unknown pin domain")
)
