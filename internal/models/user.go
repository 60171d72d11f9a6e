// Package models содержит доменные модели спортивного комплекса:
// пользователей, виды спорта, занятия, расписания и записи на занятия.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

// Роли пользователей системы.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash и HashedRefreshToken никогда не должны покидать
// границы сервиса: наружу отдается только SanitizedUser.
type User struct {
	ID                 int     // Уникальный идентификатор пользователя
	Email              string  // Электронная почта (уникальная)
	PasswordHash       string  // Argon2id-хэш пароля
	Role               string  // Роль пользователя, admin или user
	HashedRefreshToken *string // Хэш действующего refresh-токена, nil если сессии нет
}

// SanitizedUser — проекция User без секретных полей.
type SanitizedUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Sanitize возвращает проекцию пользователя без хэшей пароля и refresh-токена.
func (u *User) Sanitize() *SanitizedUser {
	return &SanitizedUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// TokenPair — пара токенов, выданных пользователю при входе или обновлении.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
