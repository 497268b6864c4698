package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/passvault/internal/storage"
)

// SaveCachedPin stores the unlock PIN copy used for offline verification
func (s *Storage) SaveCachedPin(ctx context.Context, pin string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put([]byte(storage.KeyCachedPin), []byte(pin)); err != nil {
			return fmt.Errorf("failed to save cached pin: %w", err)
		}

		return nil
	})
}

// GetCachedPin returns the cached unlock PIN
// Returns ErrNoCachedPin if no PIN has been cached
func (s *Storage) GetCachedPin(ctx context.Context) (string, error) {
	var pin string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get([]byte(storage.KeyCachedPin))
		if data == nil {
			return storage.ErrNoCachedPin
		}

		pin = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return pin, nil
}

// SetSessionActive marks the session as unlocked with the given token
func (s *Storage) SetSessionActive(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put([]byte(storage.KeySessionActive), []byte("true")); err != nil {
			return fmt.Errorf("failed to set session flag: %w", err)
		}

		if err := bucket.Put([]byte(storage.KeySessionToken), []byte(token)); err != nil {
			return fmt.Errorf("failed to save session token: %w", err)
		}

		return nil
	})
}

// SessionActive reports whether an unlocked session exists
func (s *Storage) SessionActive(ctx context.Context) (bool, error) {
	var active bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		active = string(bucket.Get([]byte(storage.KeySessionActive))) == "true"
		return nil
	})
	if err != nil {
		return false, err
	}

	return active, nil
}

// ClearSession drops the session flag and token (logout)
// Кэшированный PIN при этом сохраняется: logout не удаляет сам PIN
func (s *Storage) ClearSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete([]byte(storage.KeySessionActive)); err != nil {
			return fmt.Errorf("failed to clear session flag: %w", err)
		}

		if err := bucket.Delete([]byte(storage.KeySessionToken)); err != nil {
			return fmt.Errorf("failed to clear session token: %w", err)
		}

		return nil
	})
}
