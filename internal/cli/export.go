package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iudanet/passvault/internal/export"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	credentials, err := c.vaultService.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list credentials: %w", err)
	}

	path := filepath.Join(dir, export.FileName(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, credentials); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✓ Exported %d credential(s) to %s\n", len(credentials), path)
	fmt.Println("Note: Passwords are masked in the export.")
	return nil
}
