package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	jwtlib "github.com/magabrotheeeer/sport-complex/internal/lib/jwt"
	"github.com/magabrotheeeer/sport-complex/internal/lib/password"
	"github.com/magabrotheeeer/sport-complex/internal/models"
	"github.com/magabrotheeeer/sport-complex/internal/services/auth"
)

type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) CreateUser(ctx context.Context, email, passwordHash, role string) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash, role)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *StorageMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *StorageMock) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *StorageMock) UpdateRefreshTokenHash(ctx context.Context, userID int, hash *string) error {
	args := m.Called(ctx, userID, hash)
	return args.Error(0)
}

func (m *StorageMock) RotateRefreshTokenHash(ctx context.Context, userID int, currentHash, newHash string) error {
	args := m.Called(ctx, userID, currentHash, newHash)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestMaker() jwtlib.Maker {
	return jwtlib.NewMaker("test_access_secret", "test_refresh_secret", 15*time.Minute, 168*time.Hour)
}

func newTestService(t *testing.T, storage *StorageMock) *auth.Service {
	t.Helper()
	service, err := auth.New(newNoopLogger(), storage, newTestMaker())
	require.NoError(t, err)
	return service
}

func TestService_Register(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	storage.On("CreateUser", mock.Anything, "user@example.com", mock.MatchedBy(func(hash string) bool {
		return password.CompareHash(hash, "password123") == nil
	}), models.RoleUser).Return(&models.User{
		ID:    1,
		Email: "user@example.com",
		Role:  models.RoleUser,
	}, nil).Once()

	user, err := service.Register(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	storage.AssertExpectations(t)
}

func TestService_Register_EmailTaken(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	storage.On("CreateUser", mock.Anything, "taken@example.com", mock.Anything, models.RoleUser).
		Return(nil, errs.ErrEmailTaken).Once()

	user, err := service.Register(context.Background(), "taken@example.com", "password123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	passwordHash, err := password.GetHash("password123")
	require.NoError(t, err)

	storage.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&models.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}, nil).Once()

	var storedHash string
	storage.On("UpdateRefreshTokenHash", mock.Anything, 1, mock.MatchedBy(func(hash *string) bool {
		if hash == nil {
			return false
		}
		storedHash = *hash
		return true
	})).Return(nil).Once()

	pair, user, err := service.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 1, user.ID)

	// Сохраненный хэш соответствует выданному refresh-токену.
	assert.NoError(t, password.CompareHash(storedHash, pair.RefreshToken))

	claims, err := newTestMaker().ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	storage.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	passwordHash, err := password.GetHash("password123")
	require.NoError(t, err)

	storage.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&models.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: passwordHash,
	}, nil).Once()

	pair, user, err := service.Login(context.Background(), "user@example.com", "wrong_password")
	assert.Nil(t, pair)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	storage.AssertNotCalled(t, "UpdateRefreshTokenHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	storage.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errs.ErrNotFound).Once()

	pair, user, err := service.Login(context.Background(), "ghost@example.com", "password123")
	assert.Nil(t, pair)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestService_Refresh(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	refreshToken, err := newTestMaker().GenerateRefreshToken(1, "user@example.com", models.RoleUser)
	require.NoError(t, err)
	currentHash, err := password.GetHash(refreshToken)
	require.NoError(t, err)

	storage.On("GetUserByID", mock.Anything, 1).Return(&models.User{
		ID:                 1,
		Email:              "user@example.com",
		Role:               models.RoleUser,
		HashedRefreshToken: &currentHash,
	}, nil).Once()

	var pair *models.TokenPair
	storage.On("RotateRefreshTokenHash", mock.Anything, 1, currentHash, mock.MatchedBy(func(newHash string) bool {
		// Новый хэш соответствует новому refresh-токену, не старому.
		return password.CompareHash(newHash, refreshToken) != nil
	})).Return(nil).Once()

	pair, err = service.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, refreshToken, pair.RefreshToken)
	storage.AssertExpectations(t)
}

func TestService_Refresh_RevokedToken(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	refreshToken, err := newTestMaker().GenerateRefreshToken(1, "user@example.com", models.RoleUser)
	require.NoError(t, err)

	storage.On("GetUserByID", mock.Anything, 1).Return(&models.User{
		ID:    1,
		Email: "user@example.com",
	}, nil).Once()

	pair, err := service.Refresh(context.Background(), refreshToken)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestService_Refresh_ReplayedToken(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	maker := newTestMaker()
	oldToken, err := maker.GenerateRefreshToken(1, "user@example.com", models.RoleUser)
	require.NoError(t, err)

	// Сохранен хэш другого (более нового) токена: повтор старого не проходит.
	newerToken, err := maker.GenerateRefreshToken(1, "user@example.com", models.RoleUser)
	require.NoError(t, err)
	newerHash, err := password.GetHash(newerToken)
	require.NoError(t, err)

	storage.On("GetUserByID", mock.Anything, 1).Return(&models.User{
		ID:                 1,
		Email:              "user@example.com",
		HashedRefreshToken: &newerHash,
	}, nil).Once()

	pair, err := service.Refresh(context.Background(), oldToken)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, errs.ErrInvalidRefreshToken)
	storage.AssertNotCalled(t, "RotateRefreshTokenHash",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Refresh_LostRotationRace(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	refreshToken, err := newTestMaker().GenerateRefreshToken(1, "user@example.com", models.RoleUser)
	require.NoError(t, err)
	currentHash, err := password.GetHash(refreshToken)
	require.NoError(t, err)

	storage.On("GetUserByID", mock.Anything, 1).Return(&models.User{
		ID:                 1,
		Email:              "user@example.com",
		HashedRefreshToken: &currentHash,
	}, nil).Once()
	storage.On("RotateRefreshTokenHash", mock.Anything, 1, currentHash, mock.Anything).
		Return(errs.ErrInvalidRefreshToken).Once()

	pair, err := service.Refresh(context.Background(), refreshToken)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, errs.ErrInvalidRefreshToken)
}

func TestService_Refresh_GarbageToken(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	pair, err := service.Refresh(context.Background(), "not.a.jwt")
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	storage.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestService_Logout(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	storage.On("UpdateRefreshTokenHash", mock.Anything, 1, (*string)(nil)).Return(nil).Once()

	err := service.Logout(context.Background(), 1)
	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestService_GetProfile(t *testing.T) {
	storage := new(StorageMock)
	service := newTestService(t, storage)

	storage.On("GetUserByID", mock.Anything, 7).Return(&models.User{
		ID:    7,
		Email: "user@example.com",
		Role:  models.RoleAdmin,
	}, nil).Once()

	user, err := service.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	storage.On("GetUserByID", mock.Anything, 8).Return(nil, errs.ErrNotFound).Once()
	user, err = service.GetProfile(context.Background(), 8)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
