package models

// PinDomain выбирает одно из двух независимых пространств PIN-кодов.
type PinDomain string

const (
	// PinDomainUnlock PIN входа в приложение
	PinDomainUnlock PinDomain = "unlock"
	// PinDomainReveal PIN показа пароля/описания внутри записи
	PinDomainReveal PinDomain = "reveal"
)

// Valid проверяет, что домен известен.
func (d PinDomain) Valid() bool {
	return d == PinDomainUnlock || d == PinDomainReveal
}

// PinRecord представляет текущий PIN одного домена.
// Pin хранится в ledger зашифрованным; создание нового документа аддитивно,
// "текущим" считается самый свежий по CreatedAt (см. pin.Service).
type PinRecord struct {
	ID        string `json:"id"`
	Pin       string `json:"pin"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	// IsDisable: имя инвертировано относительно смысла — truthy означает,
	// что сохраненному PIN можно доверять при сравнении. Поведение
	// сохранено как в проде, переименование требует миграции данных.
	IsDisable bool `json:"isDisable"`
}
