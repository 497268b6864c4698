package storage

import "context"

// Ключи session-пространства локального кэша.
const (
	// KeyCachedPin локальная копия unlock PIN для offline-проверки
	KeyCachedPin = "stored_pin"
	// KeySessionActive флаг активной разблокированной сессии
	KeySessionActive = "session_active"
	// KeySessionToken идентификатор текущей сессии
	KeySessionToken = "session_token"
)

// SessionStore defines interface for device-local session state
type SessionStore interface {
	// SaveCachedPin stores the unlock PIN copy used for offline verification
	SaveCachedPin(ctx context.Context, pin string) error

	// GetCachedPin returns the cached unlock PIN
	// Returns ErrNoCachedPin if no PIN has been cached
	GetCachedPin(ctx context.Context) (string, error)

	// SetSessionActive marks the session as unlocked with the given token
	SetSessionActive(ctx context.Context, token string) error

	// SessionActive reports whether an unlocked session exists
	SessionActive(ctx context.Context) (bool, error)

	// ClearSession drops the session flag and token (logout)
	ClearSession(ctx context.Context) error
}
