package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/passvault/internal/models"
)

func TestValidateCredential(t *testing.T) {
	tests := []struct {
		name    string
		cred    models.Credential
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid - required fields only",
			cred: models.Credential{
				Title:    "GitHub",
				Username: "alice",
				Password: "p",
			},
			wantErr: false,
		},
		{
			name: "valid - all fields",
			cred: models.Credential{
				Title:       "GitHub",
				Username:    "alice",
				Email:       "alice@example.com",
				Phone:       "+79001234567",
				Password:    "secret",
				Description: "work account",
			},
			wantErr: false,
		},
		{
			name: "invalid - empty title",
			cred: models.Credential{
				Username: "alice",
				Password: "secret",
			},
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name: "invalid - whitespace title",
			cred: models.Credential{
				Title:    "   ",
				Username: "alice",
				Password: "secret",
			},
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name: "invalid - empty username",
			cred: models.Credential{
				Title:    "GitHub",
				Password: "secret",
			},
			wantErr: true,
			errMsg:  "username cannot be empty",
		},
		{
			name: "invalid - empty password",
			cred: models.Credential{
				Title:    "GitHub",
				Username: "alice",
			},
			wantErr: true,
			errMsg:  "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredential(&tt.cred)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePin(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid - 4 digits",
			pin:     "1234",
			wantErr: false,
		},
		{
			name:    "valid - 6 digits",
			pin:     "123456",
			wantErr: false,
		},
		{
			name:    "valid - leading zeros",
			pin:     "0042",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			pin:     "",
			wantErr: true,
			errMsg:  "pin cannot be empty",
		},
		{
			name:    "invalid - too short",
			pin:     "123",
			wantErr: true,
			errMsg:  "must be at least 4 digits",
		},
		{
			name:    "invalid - too long",
			pin:     "1234567",
			wantErr: true,
			errMsg:  "must not exceed 6 digits",
		},
		{
			name:    "invalid - letters",
			pin:     "12ab",
			wantErr: true,
			errMsg:  "can only contain digits",
		},
		{
			name:    "invalid - with space",
			pin:     "12 34",
			wantErr: true,
			errMsg:  "can only contain digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePin(tt.pin)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
