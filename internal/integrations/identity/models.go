package identity

import "strings"

// User аккаунт identity провайдера (админское представление)
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

type UserMetadata struct {
	Name string `json:"name"`
}

// DisplayName имя из metadata без пробелов, пустое если не задано
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.UserMetadata.Name)
}
