// Package errs определяет сигнальные ошибки доменного уровня.
// Сервисы возвращают их (возможно обернутыми через %w), а транспортный
// слой отображает в HTTP-статусы через errors.Is.
package errs

import "errors"

var (
	// ErrNotFound — запрошенная сущность не существует.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken — пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials — неверная пара email/пароль.
	// Одна и та же ошибка для несуществующего email и неверного пароля.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccessDenied — у пользователя нет активной сессии:
	// refresh невозможен после logout или до первого login.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRefreshToken — предъявленный refresh-токен не совпадает
	// с действующим: повтор после ротации или подделка.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrSportExists — вид спорта с таким названием уже есть в каталоге.
	ErrSportExists = errors.New("sport already exists")

	// ErrAlreadyEnrolled — пользователь уже записан на это занятие.
	ErrAlreadyEnrolled = errors.New("already enrolled")
)
