// Package jwt реализует выпуск и проверку пары JWT токенов (access + refresh)
// с разными секретами подписи: компрометация секрета access-токена не
// позволяет выпускать валидные refresh-токены.
package jwt

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает данные пользователя, хранящиеся в токене.
//
// Идентификатор пользователя передается в стандартном claim "sub".
type CustomClaims struct {
	Email                string `json:"email"` // Электронная почта пользователя
	Role                 string `json:"role"`  // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims (ExpiresAt, IssuedAt, Subject и пр.)
}

// UserID извлекает идентификатор пользователя из claim "sub".
func (c *CustomClaims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}
