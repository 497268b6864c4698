package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/passvault/internal/models"
	"github.com/iudanet/passvault/internal/pin"
)

var pinUsage = "Usage: passvault pin <set|change> <unlock|reveal>"

func (c *Cli) runPin(ctx context.Context, args []string) error {
	if err := c.requireUnlocked(ctx); err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("missing arguments. %s", pinUsage)
	}

	domain := models.PinDomain(args[1])
	if !domain.Valid() {
		return fmt.Errorf("unknown pin domain: %s. %s", args[1], pinUsage)
	}

	switch args[0] {
	case "set":
		return c.runPinSet(ctx, domain)
	case "change":
		return c.runPinChange(ctx, domain)
	default:
		return fmt.Errorf("unknown pin action: %s. %s", args[0], pinUsage)
	}
}

func (c *Cli) runPinSet(ctx context.Context, domain models.PinDomain) error {
	// set — только для домена без PIN; существующий меняется через change
	if _, err := c.pinService.GetCurrent(ctx, domain); err == nil {
		return fmt.Errorf("a %s PIN already exists. Use 'passvault pin change %s'", domain, domain)
	} else if !errors.Is(err, pin.ErrNoPin) {
		return fmt.Errorf("failed to check pin: %w", err)
	}

	fmt.Printf("=== Create %s PIN ===\n", domain)
	fmt.Println()

	entered, err := readSecret("New PIN (4-6 digits): ")
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

	if _, err := c.pinService.Create(ctx, domain, entered, true); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ %s PIN created!\n", domain)
	return nil
}

func (c *Cli) runPinChange(ctx context.Context, domain models.PinDomain) error {
	fmt.Printf("=== Change %s PIN ===\n", domain)
	fmt.Println()

	oldPin, err := readSecret("Current PIN: ")
	if err != nil {
		return fmt.Errorf("failed to read pin: %w", err)
	}

	newPin, err := readSecret("New PIN (4-6 digits): ")
	if err != nil {
		return fmt.Errorf("failed to read pin: %w", err)
	}
	confirm, err := readSecret("Confirm new PIN: ")
	if err != nil {
		return fmt.Errorf("failed to read pin: %w", err)
	}
	if newPin != confirm {
		return fmt.Errorf("PINs do not match")
	}

	ok, err := c.pinService.VerifyAndRotate(ctx, domain, oldPin, newPin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("incorrect current PIN")
	}

	fmt.Println()
	fmt.Printf("✓ %s PIN changed!\n", domain)
	return nil
}
