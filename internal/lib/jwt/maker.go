package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker описывает интерфейс для выпуска и проверки пары токенов.
type Maker interface {
	// GenerateAccessToken выпускает короткоживущий access-токен.
	GenerateAccessToken(userID int, email, role string) (string, error)
	// GenerateRefreshToken выпускает refresh-токен, подписанный отдельным секретом.
	GenerateRefreshToken(userID int, email, role string) (string, error)
	// ParseAccessToken проверяет подпись и срок действия access-токена.
	ParseAccessToken(tokenStr string) (*CustomClaims, error)
	// ParseRefreshToken проверяет подпись и срок действия refresh-токена.
	ParseRefreshToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker с двумя секретными ключами и разными TTL.
type MakerImpl struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewMaker создает MakerImpl. Секреты обязаны различаться на уровне конфигурации.
func NewMaker(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GenerateAccessToken выпускает access-токен с claims {sub, email, role}.
func (j *MakerImpl) GenerateAccessToken(userID int, email, role string) (string, error) {
	return generate(j.accessSecret, j.accessTTL, userID, email, role)
}

// GenerateRefreshToken выпускает refresh-токен с теми же claims,
// но подписанный refresh-секретом и с большим TTL.
func (j *MakerImpl) GenerateRefreshToken(userID int, email, role string) (string, error) {
	return generate(j.refreshSecret, j.refreshTTL, userID, email, role)
}

// ParseAccessToken парсит access-токен, проверяет подпись и срок действия.
func (j *MakerImpl) ParseAccessToken(tokenStr string) (*CustomClaims, error) {
	return parse(j.accessSecret, tokenStr)
}

// ParseRefreshToken парсит refresh-токен, проверяет подпись и срок действия.
func (j *MakerImpl) ParseRefreshToken(tokenStr string) (*CustomClaims, error) {
	return parse(j.refreshSecret, tokenStr)
}

func generate(secret string, ttl time.Duration, userID int, email, role string) (string, error) {
	const op = "jwt.generate"
	claims := CustomClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

func parse(secret, tokenStr string) (*CustomClaims, error) {
	const op = "jwt.parse"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
