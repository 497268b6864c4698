package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptField_Roundtrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "simple text", plaintext: "Hello, World!"},
		{name: "empty string", plaintext: ""},
		{name: "single char", plaintext: "x"},
		{name: "exact block size", plaintext: "0123456789abcdef"},
		{name: "unicode", plaintext: "пароль от почты 🔐"},
		{
			name:      "longer text with specials",
			plaintext: "This is a longer text with multiple words and special characters: !@#$%^&*()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted := EncryptField(tt.plaintext)

			// Результат должен быть валидным base64
			_, err := base64.StdEncoding.DecodeString(encrypted)
			require.NoError(t, err)

			// decrypt(encrypt(x)) == x для любого валидного UTF-8
			assert.Equal(t, tt.plaintext, DecryptField(encrypted))
		})
	}
}

func TestEncryptField_Deterministic(t *testing.T) {
	// Фиксированный ключ и IV дают одинаковый ciphertext для одинакового
	// plaintext — на этом свойстве держится поиск PIN по шифротексту
	first := EncryptField("123456")
	second := EncryptField("123456")
	assert.Equal(t, first, second)

	// Разный plaintext — разный ciphertext
	assert.NotEqual(t, EncryptField("123456"), EncryptField("654321"))
}

func TestEncryptField_HidesPlaintext(t *testing.T) {
	encrypted := EncryptField("my-secret-password")
	assert.NotContains(t, encrypted, "my-secret-password")
	assert.NotEqual(t, "my-secret-password", encrypted)
}

func TestDecryptField_FailClosed(t *testing.T) {
	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "not base64", ciphertext: "%%% not base64 %%%"},
		{name: "empty input", ciphertext: ""},
		{
			name: "base64 but not block aligned",
			// 5 байт после декодирования
			ciphertext: base64.StdEncoding.EncodeToString([]byte("abcde")),
		},
		{
			name: "truncated ciphertext",
			// Обрезанный до некратной блоку длины шифротекст
			ciphertext: base64.StdEncoding.EncodeToString([]byte(strings.Repeat("z", 17))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Поврежденное поле деградирует в пустую строку, не в панику
			assert.Equal(t, "", DecryptField(tt.ciphertext))
		})
	}
}

func TestPkcs7Unpad_RejectsCorruptPadding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "not block aligned", data: []byte{1, 2, 3}},
		{name: "padding length zero", data: append(make([]byte, 15), 0)},
		{name: "padding length too big", data: append(make([]byte, 15), 17)},
		{name: "inconsistent padding bytes", data: append(make([]byte, 14), 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tt.data, 16)
			require.Error(t, err)
		})
	}
}
