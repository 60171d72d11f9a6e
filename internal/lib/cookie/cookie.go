// Package cookie содержит хелперы для установки и сброса refresh-токена
// в HTTP cookie. Refresh-токен никогда не возвращается в теле ответа:
// HttpOnly + Secure + SameSite=Strict, путь ограничен эндпоинтом /refresh.
package cookie

import (
	"net/http"
	"time"
)

// RefreshTokenName — имя cookie с refresh-токеном.
const RefreshTokenName = "refresh_token"

// RefreshTokenPath — единственный путь, на который браузер отправляет cookie.
const RefreshTokenPath = "/api/v1/auth/refresh"

// SetRefreshToken устанавливает refresh-токен в cookie ответа.
func SetRefreshToken(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenName,
		Value:    token,
		Path:     RefreshTokenPath,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearRefreshToken сбрасывает cookie с refresh-токеном.
func ClearRefreshToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenName,
		Value:    "",
		Path:     RefreshTokenPath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
