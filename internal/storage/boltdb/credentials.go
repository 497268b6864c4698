package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/passvault/internal/models"
	"github.com/iudanet/passvault/internal/storage"
)

// SaveSnapshot overwrites the last-known-good snapshot of all credentials
func (s *Storage) SaveSnapshot(ctx context.Context, creds []models.Credential) error {
	return s.putCredentialList(storage.KeySnapshot, creds)
}

// GetSnapshot returns the cached snapshot
// Returns an empty slice if no snapshot has been written yet
func (s *Storage) GetSnapshot(ctx context.Context) ([]models.Credential, error) {
	return s.getCredentialList(storage.KeySnapshot)
}

// SaveQueue overwrites the offline-pending-write queue
func (s *Storage) SaveQueue(ctx context.Context, creds []models.Credential) error {
	return s.putCredentialList(storage.KeyOfflineQueue, creds)
}

// GetQueue returns the offline-pending-write queue in FIFO order
func (s *Storage) GetQueue(ctx context.Context) ([]models.Credential, error) {
	return s.getCredentialList(storage.KeyOfflineQueue)
}

// putCredentialList сохраняет список записей как JSON-массив под ключом key
func (s *Storage) putCredentialList(key string, creds []models.Credential) error {
	if creds == nil {
		creds = []models.Credential{}
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save credentials under %q: %w", key, err)
		}

		return nil
	})
}

// getCredentialList читает JSON-массив записей под ключом key
// Отсутствующий ключ означает пустой список, не ошибку
func (s *Storage) getCredentialList(key string) ([]models.Credential, error) {
	var creds []models.Credential

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			// Ключ еще не записан — пустой список
			creds = []models.Credential{}
			return nil
		}

		if err := json.Unmarshal(data, &creds); err != nil {
			return fmt.Errorf("failed to unmarshal credentials under %q: %w", key, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return creds, nil
}
