// Package auth реализует регистрацию, вход и ротацию refresh-токенов.
//
// Refresh-токен хранится на строке пользователя в виде argon2id-хэша.
// Ротация выполняется условным UPDATE по текущему хэшу: повторное
// использование уже ротированного токена не проходит и трактуется как
// компрометация.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	jwtlib "github.com/magabrotheeeer/sport-complex/internal/lib/jwt"
	"github.com/magabrotheeeer/sport-complex/internal/lib/password"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// UserStorage описывает операции хранилища, нужные для аутентификации.
type UserStorage interface {
	CreateUser(ctx context.Context, email, passwordHash, role string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateRefreshTokenHash(ctx context.Context, userID int, hash *string) error
	RotateRefreshTokenHash(ctx context.Context, userID int, currentHash, newHash string) error
}

// Service реализует бизнес-логику аутентификации.
type Service struct {
	log     *slog.Logger
	storage UserStorage
	tokens  jwtlib.Maker

	// decoyHash сравнивается с паролем, когда пользователь не найден,
	// чтобы время ответа не выдавало существование email.
	decoyHash string
}

// New создает сервис аутентификации.
func New(log *slog.Logger, storage UserStorage, tokens jwtlib.Maker) (*Service, error) {
	const op = "services.auth.New"
	decoyHash, err := password.GetHash("decoy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Service{
		log:       log,
		storage:   storage,
		tokens:    tokens,
		decoyHash: decoyHash,
	}, nil
}

// Register создает нового пользователя с ролью user.
func (s *Service) Register(ctx context.Context, email, rawPassword string) (*models.SanitizedUser, error) {
	const op = "services.auth.Register"

	passwordHash, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.CreateUser(ctx, email, passwordHash, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.Int("user_id", user.ID))
	return user.Sanitize(), nil
}

// Login проверяет учетные данные и выдает пару токенов.
// Хэш нового refresh-токена сохраняется на строке пользователя.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.TokenPair, *models.SanitizedUser, error) {
	const op = "services.auth.Login"

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			_ = password.CompareHash(s.decoyHash, rawPassword)
			return nil, nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}

	pair, refreshHash, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.storage.UpdateRefreshTokenHash(ctx, user.ID, &refreshHash); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user logged in", slog.Int("user_id", user.ID))
	return pair, user.Sanitize(), nil
}

// Refresh ротирует пару токенов по действующему refresh-токену.
// Неподдающийся проверке токен отклоняется как неаутентифицированный.
// Токен без сохраненного хэша отклоняется как отозванный, несовпадение
// хэша или проигрыш гонки ротации — как недействительный токен.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "services.auth.Refresh"

	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrAccessDenied)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.HashedRefreshToken == nil {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrAccessDenied)
	}
	if err := password.CompareHash(*user.HashedRefreshToken, refreshToken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidRefreshToken)
	}

	pair, refreshHash, err := s.issueTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.storage.RotateRefreshTokenHash(ctx, user.ID, *user.HashedRefreshToken, refreshHash); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("token pair rotated", slog.Int("user_id", user.ID))
	return pair, nil
}

// Logout отзывает refresh-токен пользователя.
func (s *Service) Logout(ctx context.Context, userID int) error {
	const op = "services.auth.Logout"
	if err := s.storage.UpdateRefreshTokenHash(ctx, userID, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user logged out", slog.Int("user_id", userID))
	return nil
}

// GetProfile возвращает данные текущего пользователя.
func (s *Service) GetProfile(ctx context.Context, userID int) (*models.SanitizedUser, error) {
	const op = "services.auth.GetProfile"
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Sanitize(), nil
}

func (s *Service) issueTokenPair(user *models.User) (*models.TokenPair, string, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	refreshHash, err := password.GetHash(refreshToken)
	if err != nil {
		return nil, "", err
	}
	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, refreshHash, nil
}
