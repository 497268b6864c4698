package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing credential ID. Usage: passvault delete <id>")
	}
	credentialID := args[0]

	confirm, err := readInput(fmt.Sprintf("Delete credential %s? (y/N): ", credentialID))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := c.vaultService.Remove(ctx, credentialID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	fmt.Println("✓ Credential deleted.")
	return nil
}
