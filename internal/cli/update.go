package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/passvault/internal/models"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing credential ID. Usage: passvault update <id>")
	}
	credentialID := args[0]

	fmt.Println("=== Update Credential ===")
	fmt.Println()
	fmt.Println("Leave a field empty to keep its current value.")
	fmt.Println()

	var upd models.CredentialUpdate

	title, err := readInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title != "" {
		upd.Title = &title
	}

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username != "" {
		upd.Username = &username
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if email != "" {
		upd.Email = &email
	}

	phone, err := readInput("Phone: ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}
	if phone != "" {
		upd.Phone = &phone
	}

	password, err := readSecret("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != "" {
		upd.Password = &password
	}

	description, err := readInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if description != "" {
		upd.Description = &description
	}

	if upd.IsEmpty() {
		fmt.Println("Nothing to update.")
		return nil
	}

	if err := c.vaultService.Update(ctx, credentialID, upd); err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Credential updated successfully!")
	return nil
}
