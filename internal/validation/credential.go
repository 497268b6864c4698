package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iudanet/passvault/internal/models"
)

// PinPattern определяет допустимый формат PIN-кода: 4-6 цифр.
var PinPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

const (
	// MinPinLen минимальная длина PIN
	MinPinLen = 4
	// MaxPinLen максимальная длина PIN
	MaxPinLen = 6
)

// ValidateCredential проверяет обязательные поля записи перед сохранением.
// Title, username и password обязательны; email, phone и description
// опциональны. Проверка выполняется до любой попытки записи.
func ValidateCredential(c *models.Credential) error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if c.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}

// ValidatePin проверяет формат PIN-кода
// Только цифры, длина 4-6 символов
func ValidatePin(pin string) error {
	if pin == "" {
		return fmt.Errorf("pin cannot be empty")
	}

	if len(pin) < MinPinLen {
		return fmt.Errorf("pin must be at least %d digits long", MinPinLen)
	}

	if len(pin) > MaxPinLen {
		return fmt.Errorf("pin must not exceed %d digits", MaxPinLen)
	}

	if !PinPattern.MatchString(pin) {
		return fmt.Errorf("pin can only contain digits (0-9)")
	}

	return nil
}
