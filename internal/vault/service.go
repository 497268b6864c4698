// Package vault реализует репозиторий учетных записей: слияние локального
// кэша и удаленного ledger, offline queue и шифрование полей на границе.
package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iudanet/passvault/internal/crypto"
	"github.com/iudanet/passvault/internal/ledger"
	"github.com/iudanet/passvault/internal/models"
	"github.com/iudanet/passvault/internal/storage"
	"github.com/iudanet/passvault/internal/validation"
)

// ErrNotFound indicates that the credential doesn't exist locally or remotely
var ErrNotFound = errors.New("credential not found")

// Connectivity предоставляет snapshot online/offline состояния.
// Репозиторий читает его один раз в начале каждой операции.
type Connectivity interface {
	IsOnline() bool
}

// Service определяет интерфейс репозитория учетных записей.
// Все операции принимают и возвращают plaintext-значения полей:
// шифрование невидимо для вызывающего.
type Service interface {
	// ListAll returns all credentials, remote-first with cache fallback
	ListAll(ctx context.Context) ([]models.Credential, error)

	// Create validates, stamps and persists a new credential
	Create(ctx context.Context, cred models.Credential) (models.Credential, error)

	// Update applies a partial update; missing id is a silent cache no-op
	Update(ctx context.Context, id string, upd models.CredentialUpdate) error

	// Remove deletes a credential; missing id is a no-op
	Remove(ctx context.Context, id string) error

	// GetByID returns one credential, remote-first with cache fallback
	// Returns ErrNotFound if the id is unknown everywhere
	GetByID(ctx context.Context, id string) (models.Credential, error)
}

// service orchestrates cache, ledger, connectivity gate and field cipher
type service struct {
	remote ledger.CredentialLedger
	cache  storage.CredentialCache
	gate   Connectivity
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a credential repository service
func NewService(remote ledger.CredentialLedger, cache storage.CredentialCache, gate Connectivity, logger *slog.Logger) Service {
	return &service{
		remote: remote,
		cache:  cache,
		gate:   gate,
		logger: logger,
		now:    time.Now,
	}
}

// ListAll returns all credentials.
// Online: сначала replay offline queue, затем авторитетный список из
// ledger (createdAt desc), расшифровка, перезапись снимка кэша.
// Offline или ошибка ledger: снимок кэша как есть (он хранит plaintext).
func (s *service) ListAll(ctx context.Context) ([]models.Credential, error) {
	if !s.gate.IsOnline() {
		return s.cache.GetSnapshot(ctx)
	}

	// Replay выполняется до чтения, чтобы список включал offline-записи
	if res := s.replayQueue(ctx); res.State == ReplayPartiallyFailed {
		s.logger.Warn("offline queue replay partially failed",
			"replayed", res.Replayed, "failed", res.Failed)
	}

	remote, err := s.remote.List(ctx)
	if err != nil {
		// Fail-soft: деградируем до кэша
		s.logger.Warn("remote list failed, falling back to cache", "error", err)
		return s.cache.GetSnapshot(ctx)
	}

	creds := make([]models.Credential, 0, len(remote))
	for _, c := range remote {
		creds = append(creds, decryptCredential(c))
	}

	// Снимок кэша полностью заменяется авторитетным списком
	if err := s.cache.SaveSnapshot(ctx, creds); err != nil {
		s.logger.Warn("failed to refresh cache snapshot", "error", err)
	}

	return creds, nil
}

// Create validates, stamps and persists a new credential.
// Возвращаемая запись всегда содержит plaintext-поля.
func (s *service) Create(ctx context.Context, cred models.Credential) (models.Credential, error) {
	if err := validation.ValidateCredential(&cred); err != nil {
		return models.Credential{}, fmt.Errorf("invalid credential: %w", err)
	}

	now := s.now().UTC().Format(time.RFC3339)
	cred.CreatedAt = now
	cred.UpdatedAt = now

	if s.gate.IsOnline() {
		id, err := s.remote.Insert(ctx, encryptCredential(cred))
		if err != nil {
			// Транзиентный сбой записи уходит в offline-ветку
			s.logger.Warn("remote insert failed, queueing offline", "error", err)
			return s.createOffline(ctx, cred)
		}
		cred.ID = id

		if err := s.prependToSnapshot(ctx, cred); err != nil {
			s.logger.Warn("failed to update cache after create", "error", err)
		}

		return cred, nil
	}

	return s.createOffline(ctx, cred)
}

// createOffline назначает локальный id и ставит запись в offline queue
func (s *service) createOffline(ctx context.Context, cred models.Credential) (models.Credential, error) {
	// Timestamp-derived id; заменяется серверным id при следующем replay
	cred.ID = strconv.FormatInt(s.now().UnixMilli(), 10)

	queue, err := s.cache.GetQueue(ctx)
	if err != nil {
		return models.Credential{}, fmt.Errorf("failed to read offline queue: %w", err)
	}
	if err := s.cache.SaveQueue(ctx, append(queue, cred)); err != nil {
		return models.Credential{}, fmt.Errorf("failed to append to offline queue: %w", err)
	}

	if err := s.prependToSnapshot(ctx, cred); err != nil {
		s.logger.Warn("failed to update cache after offline create", "error", err)
	}

	s.logger.Info("credential queued for replay", "id", cred.ID)
	return cred, nil
}

// Update applies a partial update.
// Online: зашифрованные поля уходят в ledger с обновленным updatedAt.
// Кэш обновляется plaintext-копией всегда; отсутствующий id — тихий no-op.
func (s *service) Update(ctx context.Context, id string, upd models.CredentialUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	now := s.now().UTC().Format(time.RFC3339)

	if s.gate.IsOnline() {
		if err := s.remote.Update(ctx, id, encryptUpdate(upd), now); err != nil {
			s.logger.Warn("remote update failed", "id", id, "error", err)
		}
	}

	snapshot, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache snapshot: %w", err)
	}

	for i := range snapshot {
		if snapshot[i].ID == id {
			upd.ApplyTo(&snapshot[i])
			snapshot[i].UpdatedAt = now
			return s.cache.SaveSnapshot(ctx, snapshot)
		}
	}

	// id не найден в кэше — задокументированный no-op
	return nil
}

// Remove deletes a credential remotely (when online) and always drops it
// from the cache snapshot. Nonexistent id is a no-op.
func (s *service) Remove(ctx context.Context, id string) error {
	if s.gate.IsOnline() {
		if err := s.remote.Delete(ctx, id); err != nil {
			// Не всплывает: политика fail-soft для транзиентных сбоев
			s.logger.Warn("remote delete failed", "id", id, "error", err)
		}
	}

	snapshot, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cache snapshot: %w", err)
	}

	filtered := snapshot[:0]
	for _, c := range snapshot {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(snapshot) {
		return nil
	}

	return s.cache.SaveSnapshot(ctx, filtered)
}

// GetByID returns one credential.
// Online: чтение из ledger с расшифровкой; любая ошибка (not-found или
// транзиентная) деградирует до поиска в снимке кэша.
func (s *service) GetByID(ctx context.Context, id string) (models.Credential, error) {
	if s.gate.IsOnline() {
		cred, err := s.remote.Get(ctx, id)
		if err == nil {
			return decryptCredential(cred), nil
		}
		if !errors.Is(err, ledger.ErrNotFound) {
			s.logger.Warn("remote get failed, falling back to cache", "id", id, "error", err)
		}
	}

	snapshot, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		return models.Credential{}, fmt.Errorf("failed to read cache snapshot: %w", err)
	}

	for _, c := range snapshot {
		if c.ID == id {
			return c, nil
		}
	}

	return models.Credential{}, ErrNotFound
}

// prependToSnapshot вставляет новую запись в начало снимка кэша
// (список упорядочен по createdAt desc, новая запись самая свежая)
func (s *service) prependToSnapshot(ctx context.Context, cred models.Credential) error {
	snapshot, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		return err
	}
	return s.cache.SaveSnapshot(ctx, append([]models.Credential{cred}, snapshot...))
}

// encryptCredential возвращает копию записи с зашифрованными
// чувствительными полями; опциональные пустые поля остаются ""
func encryptCredential(cred models.Credential) models.Credential {
	for _, field := range cred.SensitiveFields() {
		if *field != "" {
			*field = crypto.EncryptField(*field)
		}
	}
	return cred
}

// decryptCredential возвращает копию записи с расшифрованными полями
func decryptCredential(cred models.Credential) models.Credential {
	for _, field := range cred.SensitiveFields() {
		if *field != "" {
			*field = crypto.DecryptField(*field)
		}
	}
	return cred
}

// encryptUpdate шифрует присутствующие чувствительные поля частичного
// обновления; title остается открытым
func encryptUpdate(upd models.CredentialUpdate) models.CredentialUpdate {
	for _, field := range []**string{&upd.Username, &upd.Email, &upd.Phone, &upd.Password, &upd.Description} {
		if *field != nil && **field != "" {
			enc := crypto.EncryptField(**field)
			*field = &enc
		}
	}
	return upd
}
