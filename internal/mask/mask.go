// Package mask содержит display-трансформации для частичного скрытия полей.
// Все функции чистые и тотальные: никогда не паникуют, пустой вход дает
// пустой выход. Работают только с plaintext на слое отображения и не
// касаются шифрования.
package mask

import "strings"

// Username маскирует логин: первый символ + '*' для коротких (<= 2 символов),
// иначе первый символ + '*'*(len-2) + последний символ.
func Username(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= 2 {
		return string(runes[0]) + "*"
	}

	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}

// Email маскирует локальную часть адреса по правилу Username, домен
// остается открытым. Некорректный адрес (нет '@', пустая локальная часть
// или домен) возвращается без изменений.
func Email(s string) string {
	if s == "" {
		return ""
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return s
	}

	return Username(local) + "@" + domain
}

// Phone оставляет первые и последние 2 цифры номера, середину заменяет
// на '*'. Не-цифры отбрасываются; если цифр меньше 4, вход возвращается
// без изменений.
func Phone(s string) string {
	if s == "" {
		return ""
	}

	var digits []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	const visible = 2
	if len(digits) < visible*2 {
		return s
	}

	masked := strings.Repeat("*", len(digits)-visible*2)
	return string(digits[:visible]) + masked + string(digits[len(digits)-visible:])
}

// Description оставляет первые и последние 2 символа, середину заменяет
// на '*'. Строки длиной <= 2 возвращаются без изменений.
func Description(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= 2 {
		return s
	}

	// Для строк из 3 символов середины нет
	starCount := len(runes) - 4
	if starCount < 0 {
		starCount = 0
	}

	return string(runes[:2]) + strings.Repeat("*", starCount) + string(runes[len(runes)-2:])
}

// Password заменяет каждый символ пароля на '*': раскрывается только длина.
func Password(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}
