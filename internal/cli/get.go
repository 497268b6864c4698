package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/passvault/internal/mask"
	"github.com/iudanet/passvault/internal/models"
	"github.com/iudanet/passvault/internal/pin"
	"github.com/iudanet/passvault/internal/vault"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing credential ID. Usage: passvault get <id>")
	}
	credentialID := args[0]

	cred, err := c.vaultService.GetByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return fmt.Errorf("credential not found with ID: %s", credentialID)
		}
		return fmt.Errorf("failed to get credential: %w", err)
	}

	fmt.Println("=== Credential Details ===")
	fmt.Println()
	fmt.Printf("Title:    %s\n", cred.Title)
	fmt.Printf("ID:       %s\n", cred.ID)
	fmt.Printf("Username: %s\n", mask.Username(cred.Username))
	if cred.Email != "" {
		fmt.Printf("Email:    %s\n", mask.Email(cred.Email))
	}
	if cred.Phone != "" {
		fmt.Printf("Phone:    %s\n", mask.Phone(cred.Phone))
	}
	fmt.Printf("Password: %s\n", mask.Password(cred.Password))
	if cred.Description != "" {
		fmt.Printf("Notes:    %s\n", mask.Description(cred.Description))
	}
	fmt.Println()
	fmt.Println("Note: Use 'passvault reveal <id>' to view the plaintext password.")

	return nil
}

func (c *Cli) runReveal(ctx context.Context, args []string) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing credential ID. Usage: passvault reveal <id>")
	}
	credentialID := args[0]

	cred, err := c.vaultService.GetByID(ctx, credentialID)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return fmt.Errorf("credential not found with ID: %s", credentialID)
		}
		return fmt.Errorf("failed to get credential: %w", err)
	}

	// Показ plaintext закрыт отдельным reveal PIN
	entered, err := readSecret("Reveal PIN: ")
	if err != nil {
		return fmt.Errorf("failed to read pin: %w", err)
	}

	ok, err := c.pinService.Verify(ctx, models.PinDomainReveal, entered)
	if err != nil {
		if errors.Is(err, pin.ErrNoPin) {
			return fmt.Errorf("no reveal PIN exists. Run 'passvault pin set reveal' first")
		}
		return fmt.Errorf("failed to verify pin: %w", err)
	}
	if !ok {
		return fmt.Errorf("incorrect PIN")
	}

	fmt.Println()
	fmt.Printf("Title:    %s\n", cred.Title)
	fmt.Printf("Username: %s\n", cred.Username)
	if cred.Email != "" {
		fmt.Printf("Email:    %s\n", cred.Email)
	}
	if cred.Phone != "" {
		fmt.Printf("Phone:    %s\n", cred.Phone)
	}
	fmt.Printf("Password: %s\n", cred.Password)
	if cred.Description != "" {
		fmt.Printf("Notes:    %s\n", cred.Description)
	}
	fmt.Println()

	return nil
}
