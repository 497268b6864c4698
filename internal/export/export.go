// Package export строит CSV-резервную копию списка записей.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/passvault/internal/mask"
	"github.com/iudanet/passvault/internal/models"
)

// FileName returns the dated backup file name (credentials-backup-YYYY-MM-DD.csv)
func FileName(now time.Time) string {
	return fmt.Sprintf("credentials-backup-%s.csv", now.UTC().Format("2006-01-02"))
}

// WriteCSV пишет заголовок и по строке на запись. Пароль в выгрузке
// всегда маскирован, пустые email/phone печатаются как N/A.
func WriteCSV(w io.Writer, creds []models.Credential) error {
	cw := csv.NewWriter(w)

	header := []string{"Title", "Username", "Email", "Phone", "Password", "Created"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, cred := range creds {
		row := []string{
			cred.Title,
			cred.Username,
			orNA(cred.Email),
			orNA(cred.Phone),
			mask.Password(cred.Password),
			cred.CreatedAt,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
