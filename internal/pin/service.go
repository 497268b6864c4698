// Package pin управляет двумя независимыми доменами PIN-кодов:
// unlock (вход в приложение) и reveal (показ пароля/описания записи).
package pin

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
	"github.com/iudanet/passvault/internal/validation"
)

// ErrNoPin indicates that the domain has no PIN record yet.
// Вызывающий трактует это как "PIN еще не создан" и ведет пользователя
// на создание, а не на проверку.
var ErrNoPin = errors.New("no pin record exists")

// ErrOffline indicates that no remote ledger is configured.
// PIN-операции требуют ledger; offline вход идет через локальную копию.
var ErrOffline = errors.New("remote ledger unavailable")

// Service defines the PIN vault interface
type Service interface {
	// GetCurrent returns the decrypted current PIN record of the domain
	// Returns ErrNoPin if no record exists
	GetCurrent(ctx context.Context, domain models.PinDomain) (models.PinRecord, error)

	// Create encrypts and appends a new PIN document, returns its id
	Create(ctx context.Context, domain models.PinDomain, pin string, disableFlag bool) (string, error)

	// VerifyAndRotate replaces the PIN matched by oldPin with newPin.
	// Несовпадение старого PIN — это false без ошибки, не исключение.
	VerifyAndRotate(ctx context.Context, domain models.PinDomain, oldPin, newPin string) (bool, error)

	// Verify compares the entered PIN against the stored one
	// Returns ErrNoPin when the domain has no record
	Verify(ctx context.Context, domain models.PinDomain, entered string) (bool, error)
}

// service handles PIN operations over the remote ledger
type service struct {
	remote ledger.PinLedger
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a PIN vault service
func NewService(remote ledger.PinLedger, logger *slog.Logger) Service {
	return &service{
		remote: remote,
		logger: logger,
		now:    time.Now,
	}
}

// GetCurrent returns the decrypted current PIN record of the domain.
// "Текущий" — самый свежий по createdAt документ с непустым pin:
// выбор детерминирован, в отличие от произвольного первого совпадения.
func (s *service) GetCurrent(ctx context.Context, domain models.PinDomain) (models.PinRecord, error) {
	if s.remote == nil {
		return models.PinRecord{}, ErrOffline
	}

	rec, err := s.remote.Current(ctx, domain)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return models.PinRecord{}, ErrNoPin
		}
		return models.PinRecord{}, fmt.Errorf("failed to get current pin: %w", err)
	}

	rec.Pin = crypto.DecryptField(rec.Pin)
	return rec, nil
}

// Create encrypts and appends a new PIN document (additive history)
func (s *service) Create(ctx context.Context, domain models.PinDomain, pin string, disableFlag bool) (string, error) {
	if s.remote == nil {
		return "", ErrOffline
	}
	if err := validation.ValidatePin(pin); err != nil {
		return "", fmt.Errorf("invalid pin: %w", err)
	}

	now := s.now().UTC().Format(time.RFC3339)
	rec := models.PinRecord{
		Pin:       crypto.EncryptField(pin),
		IsDisable: disableFlag,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.remote.InsertPin(ctx, domain, rec)
	if err != nil {
		return "", fmt.Errorf("failed to save pin: %w", err)
	}

	s.logger.Info("pin created", "domain", domain, "id", id)
	return id, nil
}

// VerifyAndRotate replaces the PIN matched by oldPin with newPin.
// Старый PIN шифруется тем же фиксированным ключом, документ ищется по
// точному совпадению ciphertext. Нет совпадения — false, nil.
func (s *service) VerifyAndRotate(ctx context.Context, domain models.PinDomain, oldPin, newPin string) (bool, error) {
	if s.remote == nil {
		return false, ErrOffline
	}
	if err := validation.ValidatePin(newPin); err != nil {
		return false, fmt.Errorf("invalid new pin: %w", err)
	}

	rec, err := s.remote.FindByCipher(ctx, domain, crypto.EncryptField(oldPin))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			s.logger.Info("pin rotation rejected: old pin mismatch", "domain", domain)
			return false, nil
		}
		return false, fmt.Errorf("failed to look up pin: %w", err)
	}

	now := s.now().UTC().Format(time.RFC3339)
	if err := s.remote.Rotate(ctx, domain, rec.ID, crypto.EncryptField(newPin), now); err != nil {
		return false, fmt.Errorf("failed to rotate pin: %w", err)
	}

	s.logger.Info("pin rotated", "domain", domain, "id", rec.ID)
	return true, nil
}

// Verify compares the entered PIN against the stored one.
// Сравнение числовое; дополнительно требуется truthy IsDisable флаг
// записи (наблюдаемая инвертированная семантика имени сохранена).
func (s *service) Verify(ctx context.Context, domain models.PinDomain, entered string) (bool, error) {
	rec, err := s.GetCurrent(ctx, domain)
	if err != nil {
		return false, err
	}

	if !rec.IsDisable {
		return false, nil
	}

	enteredNum, err := strconv.ParseInt(entered, 10, 64)
	if err != nil {
		return false, nil
	}
	storedNum, err := strconv.ParseInt(rec.Pin, 10, 64)
	if err != nil {
		return false, nil
	}

	return enteredNum == storedNum, nil
}
