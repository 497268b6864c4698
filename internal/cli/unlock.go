package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/passvault/internal/pin"
)

func (c *Cli) runUnlock(ctx context.Context) error {
	state, err := c.session.State(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	switch state {
	case pin.StateUnlocked:
		fmt.Println("Vault is already unlocked.")
		return nil

	case pin.StateLockedNoPin:
		fmt.Println("=== Create Unlock PIN ===")
		fmt.Println()
		fmt.Println("No PIN exists yet. Choose a 4-6 digit PIN to protect the vault.")
		fmt.Println()

		entered, err := readSecret("New PIN: ")
		if err != nil {
			return fmt.Errorf("failed to read pin: %w", err)
		}
		confirm, err := readSecret("Confirm PIN: ")
		if err != nil {
			return fmt.Errorf("failed to read pin: %w", err)
		}
		if entered != confirm {
			return fmt.Errorf("PINs do not match")
		}

		if _, err := c.session.Unlock(ctx, entered); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("✓ PIN created, vault unlocked!")
		return nil

	default: // pin.StateLocked
		entered, err := readSecret("PIN: ")
		if err != nil {
			return fmt.Errorf("failed to read pin: %w", err)
		}

		if _, err := c.session.Unlock(ctx, entered); err != nil {
			if errors.Is(err, pin.ErrPinMismatch) {
				return fmt.Errorf("incorrect PIN")
			}
			return err
		}

		fmt.Println("✓ Vault unlocked!")
		return nil
	}
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Session closed.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== PassVault Status ===")
	fmt.Println()

	state, err := c.session.State(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	switch state {
	case pin.StateUnlocked:
		fmt.Println("Session:      unlocked")
	case pin.StateLockedNoPin:
		fmt.Println("Session:      locked (no PIN created yet)")
	default:
		fmt.Println("Session:      locked")
	}

	if c.gate.IsOnline() {
		fmt.Println("Connectivity: online")
	} else {
		fmt.Println("Connectivity: offline (changes are queued locally)")
	}

	return nil
}
