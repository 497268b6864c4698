package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/passvault/internal/mask"
)

func (c *Cli) runList(ctx context.Context) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	fmt.Println("=== Saved Credentials ===")
	fmt.Println()

	credentials, err := c.vaultService.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list credentials: %w", err)
	}

	if len(credentials) == 0 {
		fmt.Println("No credentials found.")
		fmt.Println()
		fmt.Println("Use 'passvault add' to add your first credential.")
		return nil
	}

	fmt.Printf("Found %d credential(s):\n", len(credentials))
	fmt.Println()

	for i, cred := range credentials {
		fmt.Printf("%d. %s\n", i+1, cred.Title)
		fmt.Printf("   ID:       %s\n", cred.ID)
		fmt.Printf("   Username: %s\n", mask.Username(cred.Username))
		if cred.Email != "" {
			fmt.Printf("   Email:    %s\n", mask.Email(cred.Email))
		}
		if cred.Phone != "" {
			fmt.Printf("   Phone:    %s\n", mask.Phone(cred.Phone))
		}
		fmt.Println()
	}

	fmt.Println("Note: Sensitive fields are masked. Use 'passvault reveal <id>' to view plaintext.")

	return nil
}
