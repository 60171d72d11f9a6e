// Package user реализует административное управление пользователями.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/sport-complex/internal/lib/password"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Storage описывает операции хранилища пользователей.
type Storage interface {
	CreateUser(ctx context.Context, email, passwordHash, role string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int) error
}

// Service реализует бизнес-логику управления пользователями.
type Service struct {
	log     *slog.Logger
	storage Storage
}

// New создает сервис пользователей.
func New(log *slog.Logger, storage Storage) *Service {
	return &Service{log: log, storage: storage}
}

// Create создает пользователя с заданной ролью.
func (s *Service) Create(ctx context.Context, email, rawPassword, role string) (*models.SanitizedUser, error) {
	const op = "services.user.Create"
	passwordHash, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.storage.CreateUser(ctx, email, passwordHash, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user created", slog.Int("user_id", user.ID), slog.String("role", role))
	return user.Sanitize(), nil
}

// Get возвращает пользователя по идентификатору.
func (s *Service) Get(ctx context.Context, id int) (*models.SanitizedUser, error) {
	const op = "services.user.Get"
	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Sanitize(), nil
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]*models.SanitizedUser, error) {
	const op = "services.user.List"
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]*models.SanitizedUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Sanitize())
	}
	return result, nil
}

// Update изменяет email, роль и при необходимости пароль пользователя.
// Пустой rawPassword оставляет пароль без изменений.
func (s *Service) Update(ctx context.Context, id int, email, rawPassword, role string) (*models.SanitizedUser, error) {
	const op = "services.user.Update"

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.Email = email
	user.Role = role
	if rawPassword != "" {
		passwordHash, err := password.GetHash(rawPassword)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		user.PasswordHash = passwordHash
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user updated", slog.Int("user_id", id))
	return user.Sanitize(), nil
}

// Delete удаляет пользователя.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "services.user.Delete"
	if err := s.storage.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user deleted", slog.Int("user_id", id))
	return nil
}
