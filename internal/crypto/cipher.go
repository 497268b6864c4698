package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
)

// Фиксированный ключ и IV, встроенные на этапе сборки. Ключ намеренно не
// деривируется из PIN пользователя: фиксированный IV дает детерминированный
// ciphertext, на котором держится поиск PIN-документа по зашифрованному
// старому PIN при ротации (см. pin.Service.VerifyAndRotate).
var (
	fieldKey = []byte("12345678901234567890123456789012") // 32 bytes = AES-256
	fieldIV  = []byte("1234567890123456")                 // 16 bytes = AES block
)

// EncryptField шифрует одно строковое поле: AES-256-CBC + PKCS7, результат
// в base64. Детерминированно: одинаковый plaintext дает одинаковый ciphertext.
// При ошибке шифрования возвращает plaintext без изменений (fail-open) —
// задокументированный компромисс в пользу доступности записи.
func EncryptField(plaintext string) string {
	encrypted, err := encrypt([]byte(plaintext), fieldKey, fieldIV)
	if err != nil {
		return plaintext
	}
	return base64.StdEncoding.EncodeToString(encrypted)
}

// DecryptField дешифрует поле, зашифрованное EncryptField.
// При любой ошибке (битый base64, неверная длина, некорректный padding)
// возвращает пустую строку (fail-closed): поврежденное поле деградирует
// в "пусто" вместо паники у вызывающего.
func DecryptField(ciphertext string) string {
	encrypted, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return ""
	}

	plaintext, err := decrypt(encrypted, fieldKey, fieldIV)
	if err != nil {
		return ""
	}
	return string(plaintext)
}

// encrypt шифрует данные с использованием AES-CBC
// Перед шифрованием данные дополняются по PKCS7 до размера блока
func encrypt(plaintext, key, iv []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	// Создаем AES cipher block
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Дополняем по PKCS7 и шифруем
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// decrypt дешифрует данные, зашифрованные encrypt
func decrypt(encrypted, key, iv []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	if len(encrypted) == 0 || len(encrypted)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length must be a non-zero multiple of %d, got %d", aes.BlockSize, len(encrypted))
	}

	// Создаем AES cipher block
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(encrypted))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, encrypted)

	// Снимаем PKCS7 padding
	return pkcs7Unpad(plaintext, aes.BlockSize)
}

// pkcs7Pad дополняет данные до кратного blockSize размера
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad снимает PKCS7 padding, проверяя его корректность
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded data length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}

	// Каждый байт padding должен быть равен его длине
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("invalid padding byte")
		}
	}

	return data[:len(data)-padLen], nil
}
