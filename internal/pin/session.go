package pin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iudanet/passvault/internal/models"
	"github.com/iudanet/passvault/internal/storage"
	"github.com/iudanet/passvault/internal/validation"
)

// State описывает состояние входа в приложение
type State int

const (
	// StateLockedNoPin PIN еще не создан, нужен flow создания
	StateLockedNoPin State = iota
	// StateLocked PIN существует, требуется проверка
	StateLocked
	// StateUnlocked сессия активна
	StateUnlocked
)

// ErrPinMismatch indicates that the entered unlock PIN didn't match.
// Не исключение, а ожидаемый результат: вызывающий показывает retry.
var ErrPinMismatch = errors.New("pin mismatch")

// Session реализует state machine входа в приложение поверх unlock-домена.
//
//	LockedNoPin -- ввод 4-6 цифр --> Create + Unlocked
//	Locked      -- совпадение    --> Unlocked
//	Locked      -- несовпадение  --> Locked (ErrPinMismatch)
//	Unlocked    -- Logout        --> Locked
type Session struct {
	pins   Service
	store  storage.SessionStore
	logger *slog.Logger
}

// NewSession creates an app-entry session over the unlock PIN domain
func NewSession(pins Service, store storage.SessionStore, logger *slog.Logger) *Session {
	return &Session{
		pins:   pins,
		store:  store,
		logger: logger,
	}
}

// State returns the current app-entry state
func (s *Session) State(ctx context.Context) (State, error) {
	active, err := s.store.SessionActive(ctx)
	if err != nil {
		return StateLocked, fmt.Errorf("failed to read session flag: %w", err)
	}
	if active {
		return StateUnlocked, nil
	}

	if _, err := s.pins.GetCurrent(ctx, models.PinDomainUnlock); err != nil {
		if errors.Is(err, ErrNoPin) {
			return StateLockedNoPin, nil
		}
		// Ledger недоступен — пробуем локальную копию PIN
		if _, cacheErr := s.store.GetCachedPin(ctx); cacheErr == nil {
			return StateLocked, nil
		}
		return StateLockedNoPin, nil
	}

	return StateLocked, nil
}

// Unlock drives the app-entry state machine with the entered PIN.
// Если PIN еще не существует, ввод 4-6 цифр создает его и открывает
// сессию; иначе выполняется проверка. Несовпадение — ErrPinMismatch.
func (s *Session) Unlock(ctx context.Context, entered string) (State, error) {
	state, err := s.State(ctx)
	if err != nil {
		return StateLocked, err
	}

	switch state {
	case StateUnlocked:
		return StateUnlocked, nil

	case StateLockedNoPin:
		if err := validation.ValidatePin(entered); err != nil {
			return StateLockedNoPin, fmt.Errorf("invalid pin: %w", err)
		}
		if _, err := s.pins.Create(ctx, models.PinDomainUnlock, entered, true); err != nil {
			return StateLockedNoPin, err
		}
		return s.activate(ctx, entered)

	default: // StateLocked
		ok, err := s.verify(ctx, entered)
		if err != nil {
			return StateLocked, err
		}
		if !ok {
			s.logger.Info("unlock rejected: pin mismatch")
			return StateLocked, ErrPinMismatch
		}
		return s.activate(ctx, entered)
	}
}

// Logout закрывает сессию; PIN остается, следующий вход — Locked
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("session closed")
	return nil
}

// verify проверяет PIN через ledger, при его недоступности — через
// локальную копию
func (s *Session) verify(ctx context.Context, entered string) (bool, error) {
	ok, err := s.pins.Verify(ctx, models.PinDomainUnlock, entered)
	if err == nil {
		return ok, nil
	}
	if errors.Is(err, ErrNoPin) {
		return false, err
	}

	// Offline-проверка по кэшированному PIN
	cached, cacheErr := s.store.GetCachedPin(ctx)
	if cacheErr != nil {
		return false, err
	}
	s.logger.Warn("verifying pin against local copy", "error", err)
	return cached == entered, nil
}

// activate открывает сессию и обновляет локальную копию PIN
func (s *Session) activate(ctx context.Context, pin string) (State, error) {
	if err := s.store.SaveCachedPin(ctx, pin); err != nil {
		s.logger.Warn("failed to cache unlock pin", "error", err)
	}

	if err := s.store.SetSessionActive(ctx, uuid.NewString()); err != nil {
		return StateLocked, fmt.Errorf("failed to open session: %w", err)
	}

	return StateUnlocked, nil
}
