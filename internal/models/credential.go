package models

// Credential представляет одну сохраненную учетную запись.
// В ledger чувствительные поля хранятся как ciphertext; локальный кэш и
// offline queue держат plaintext-view копии, repository шифрует на границе.
type Credential struct {
	ID          string `json:"id"`
	Title       string `json:"title"`       // Title название записи (например, "GitHub")
	Username    string `json:"username"`    // Username логин, шифруется при записи
	Email       string `json:"email"`       // Email опционально, "" если не задан
	Phone       string `json:"phone"`       // Phone опционально, "" если не задан
	Password    string `json:"password"`    // Password пароль, шифруется при записи
	Description string `json:"description"` // Description опциональные заметки
	CreatedAt   string `json:"createdAt"`   // CreatedAt RFC 3339, неизменяем после создания
	UpdatedAt   string `json:"updatedAt"`   // UpdatedAt RFC 3339, обновляется при каждом update
}

// SensitiveFields возвращает указатели на поля, которые шифруются при записи
// в ledger. Title и timestamps остаются открытыми.
func (c *Credential) SensitiveFields() []*string {
	return []*string{&c.Username, &c.Email, &c.Phone, &c.Password, &c.Description}
}

// CredentialUpdate описывает частичное обновление записи.
// nil-поле означает "не трогать", непустой указатель — новое значение.
type CredentialUpdate struct {
	Title       *string `json:"title,omitempty"`
	Username    *string `json:"username,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Password    *string `json:"password,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty сообщает, что обновление не содержит ни одного поля.
func (u CredentialUpdate) IsEmpty() bool {
	return u.Title == nil && u.Username == nil && u.Email == nil &&
		u.Phone == nil && u.Password == nil && u.Description == nil
}

// ApplyTo накладывает частичное обновление на запись (plaintext-копия в кэше).
// UpdatedAt обновляет вызывающая сторона.
func (u CredentialUpdate) ApplyTo(c *Credential) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Username != nil {
		c.Username = *u.Username
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Password != nil {
		c.Password = *u.Password
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
}
