package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/passvault/internal/pin"
	"github.com/iudanet/passvault/internal/vault"
)

type Cli struct {
	vaultService vault.Service
	pinService   pin.Service
	session      *pin.Session
	gate         vault.Connectivity
}

func New(vaultService vault.Service, pinService pin.Service, session *pin.Session, gate vault.Connectivity) *Cli {
	return &Cli{
		vaultService: vaultService,
		pinService:   pinService,
		session:      session,
		gate:         gate,
	}
}

// requireUnlocked проверяет, что сессия открыта, до выполнения команды
func (c *Cli) requireUnlocked(ctx context.Context) error {
	state, err := c.session.State(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if state != pin.StateUnlocked {
		return fmt.Errorf("vault is locked. Please run 'passvault unlock' first")
	}
	return nil
}

func PrintUsage() {
	fmt.Println("PassVault Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  passvault [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version    Show version information")
	fmt.Println("  --db PATH    Path to local database (default: passvault.db)")
	fmt.Println("  --offline    Work against the local cache only")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  unlock                  Unlock the vault (creates a PIN on first run)")
	fmt.Println("  logout                  Close the session")
	fmt.Println("  status                  Show session and connectivity status")
	fmt.Println("  add                     Add new credential")
	fmt.Println("  list                    List saved credentials (sensitive fields masked)")
	fmt.Println("  get <id>                Show credential details (masked)")
	fmt.Println("  reveal <id>             Show plaintext password (asks for the reveal PIN)")
	fmt.Println("  update <id>             Update credential fields")
	fmt.Println("  delete <id>             Delete credential")
	fmt.Println("  pin set <domain>        Create a PIN (domain: unlock, reveal)")
	fmt.Println("  pin change <domain>     Change a PIN")
	fmt.Println("  export [path]           Write a CSV backup of the credential list")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  passvault unlock")
	fmt.Println("  passvault add")
	fmt.Println("  passvault list")
	fmt.Println("  passvault reveal 68498cf1a2b3c4d5e6f70812")
	fmt.Println("  passvault pin set reveal")
	fmt.Println("  passvault export ~/backups")
	fmt.Println("  passvault --offline list")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readSecret читает ввод без отображения на экране
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secretBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после скрытого ввода
	if err != nil {
		return "", err
	}
	return string(secretBytes), nil
}
