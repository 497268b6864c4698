package storage

import (
	"context"

	"github.com/iudanet/passvault/internal/models"
)

// Namespaced ключи локального кэша. Значения — JSON-массивы
// plaintext-view записей.
const (
	// KeySnapshot последний известный снимок всех записей
	KeySnapshot = "stored_credentials"
	// KeyOfflineQueue записи, созданные offline и ожидающие replay
	KeyOfflineQueue = "stored_credentials_offline"
)

// CredentialCache defines interface for the on-device credential cache.
// Кэш хранит plaintext-view копии: шифрование применяется только на
// границе с удаленным ledger.
type CredentialCache interface {
	// SaveSnapshot overwrites the last-known-good snapshot of all credentials
	SaveSnapshot(ctx context.Context, creds []models.Credential) error

	// GetSnapshot returns the cached snapshot
	// Returns an empty slice if no snapshot has been written yet
	GetSnapshot(ctx context.Context) ([]models.Credential, error)

	// SaveQueue overwrites the offline-pending-write queue
	SaveQueue(ctx context.Context, creds []models.Credential) error

	// GetQueue returns the offline-pending-write queue in FIFO order
	// Returns an empty slice if the queue is empty
	GetQueue(ctx context.Context) ([]models.Credential, error)
}
