// Package ledger описывает протокол работы с удаленным документным
// хранилищем: авторитетным источником записей и PIN-документов.
// Все чувствительные поля пересекают эту границу только как ciphertext;
// шифрованием владеют вызывающие сервисы (vault, pin).
package ledger

import (
	"context"

	"github.com/iudanet/passvault/internal/models"
)

// CredentialLedger defines the remote credential collection protocol
type CredentialLedger interface {
	// Insert appends a new credential document and returns the assigned id
	Insert(ctx context.Context, cred models.Credential) (string, error)

	// List returns all credential documents ordered by createdAt descending
	List(ctx context.Context) ([]models.Credential, error)

	// Get returns a single credential document by id
	// Returns ErrNotFound if the document doesn't exist
	Get(ctx context.Context, id string) (models.Credential, error)

	// Update applies a partial update to the document and refreshes updatedAt
	Update(ctx context.Context, id string, upd models.CredentialUpdate, updatedAt string) error

	// Delete removes the document; deleting a missing id is a no-op
	Delete(ctx context.Context, id string) error
}

// PinLedger defines the remote PIN collections protocol.
// Каждому домену соответствует отдельная коллекция; документы аддитивны,
// "текущий" выбирается детерминированно: самый свежий по createdAt.
type PinLedger interface {
	// Current returns the newest document with a non-empty pin field
	// Returns ErrNotFound if the domain has no PIN documents
	Current(ctx context.Context, domain models.PinDomain) (models.PinRecord, error)

	// InsertPin appends a new PIN document (additive history) and returns its id
	InsertPin(ctx context.Context, domain models.PinDomain, rec models.PinRecord) (string, error)

	// FindByCipher returns the document whose encrypted pin equals cipher
	// Returns ErrNotFound if no document matches
	FindByCipher(ctx context.Context, domain models.PinDomain, cipher string) (models.PinRecord, error)

	// Rotate overwrites the pin field of the document id with newCipher
	// and refreshes updatedAt
	Rotate(ctx context.Context, domain models.PinDomain, id, newCipher, updatedAt string) error
}
