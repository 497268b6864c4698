package storage

import "errors"

// Common local cache errors
var (
	// ErrNoCachedPin indicates that no unlock PIN has been cached on device
	ErrNoCachedPin = errors.New("no cached pin")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
