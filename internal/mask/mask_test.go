package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "single char", input: "a", want: "a*"},
		{name: "two chars", input: "ab", want: "a*"},
		{name: "three chars", input: "abc", want: "a*c"},
		{name: "regular username", input: "johndoe", want: "j*****e"},
		{name: "unicode", input: "пользователь", want: "п**********ь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Username(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "short local part", input: "ab@x.com", want: "a*@x.com"},
		{name: "regular email", input: "johndoe@example.com", want: "j*****e@example.com"},
		{name: "no at sign", input: "notanemail", want: "notanemail"},
		{name: "empty local part", input: "@example.com", want: "@example.com"},
		{name: "empty domain", input: "john@", want: "john@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "four digits no stars", input: "1234", want: "1234"},
		{name: "six digits", input: "123456", want: "12**56"},
		{name: "formatted number", input: "+7 (912) 345-67-89", want: "79*******89"},
		{name: "too short kept verbatim", input: "12-3", want: "12-3"},
		{name: "no digits", input: "abc", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "two chars unchanged", input: "ab", want: "ab"},
		{name: "three chars overlap", input: "abc", want: "abbc"},
		{name: "six chars", input: "secret", want: "se**et"},
		{name: "long text", input: "work account", want: "wo********nt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(tt.input))
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "six chars", input: "secret", want: "******"},
		{name: "unicode counts runes", input: "ключ", want: "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Password(tt.input))
		})
	}
}
