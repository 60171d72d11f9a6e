// Package password реализует хэширование и проверку секретов на основе argon2id.
//
// Тот же примитив используется и для паролей, и для отпечатков refresh-токенов:
// argon2id — memory-hard алгоритм, перебор хэшей по утекшей базе дорог.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash возвращается, когда строка не является корректным argon2id-хэшем.
var ErrInvalidHash = errors.New("invalid hash format")

// Параметры argon2id: 64 МБ памяти, 3 итерации, 2 потока.
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	saltLength  = 16
	keyLength   = 32
)

// GetHash принимает секрет и возвращает его argon2id-хэш в формате
// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>.
func GetHash(secret string) (string, error) {
	const op = "password.GetHash"

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hash := argon2.IDKey([]byte(secret), salt, iterations, memory, parallelism, keyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, iterations, parallelism, b64Salt, b64Hash), nil
}

// CompareHash сравнивает argon2id-хэш с предъявленным секретом.
//
// Возвращает nil при совпадении, иначе — ошибку. Сравнение выполняется
// за константное время.
func CompareHash(encodedHash, secret string) error {
	const op = "password.CompareHash"

	m, t, p, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	otherHash := argon2.IDKey([]byte(secret), salt, t, m, p, uint32(len(hash)))
	if subtle.ConstantTimeCompare(hash, otherHash) != 1 {
		return fmt.Errorf("%s: hash mismatch", op)
	}
	return nil
}

func decodeHash(encodedHash string) (m, t uint32, p uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	return m, t, p, salt, hash, nil
}
