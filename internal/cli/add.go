package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/passvault/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	fmt.Println("=== Add Credential ===")
	fmt.Println()
	fmt.Println("Enter credential details:")
	fmt.Println()

	title, err := readInput("Title (e.g., 'GitHub', 'Gmail'): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := readInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	phone, err := readInput("Phone (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	password, err := readSecret("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	description, err := readInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	cred := models.Credential{
		Title:       title,
		Username:    username,
		Email:       email,
		Phone:       phone,
		Password:    password,
		Description: description,
	}

	saved, err := c.vaultService.Create(ctx, cred)
	if err != nil {
		return fmt.Errorf("failed to add credential: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Credential added successfully!")
	fmt.Printf("ID:    %s\n", saved.ID)
	fmt.Printf("Title: %s\n", saved.Title)
	fmt.Println()

	if !c.gate.IsOnline() {
		fmt.Println("Note: Credential is stored locally and will sync when the network is back.")
	}
	return nil
}
