package sport_test

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
	"github.com/magabrotheeeer/sport-complex/internal/models"
	"github.com/magabrotheeeer/sport-complex/internal/services/sport"
)

type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) CreateSport(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *StorageMock) GetSport(ctx context.Context, id int) (*models.Sport, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Sport)
	return s, args.Error(1)
}

func (m *StorageMock) ListSports(ctx context.Context) ([]*models.Sport, error) {
	args := m.Called(ctx)
	sports, _ := args.Get(0).([]*models.Sport)
	return sports, args.Error(1)
}

func (m *StorageMock) UpdateSport(ctx context.Context, id int, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *StorageMock) DeleteSport(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	if found := args.Bool(0); found {
		if sports, ok := result.(*[]*models.Sport); ok {
			*sports = []*models.Sport{{ID: 1, Name: "cached"}}
		}
		return true, args.Error(1)
	}
	return false, args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_List_CacheHit(t *testing.T) {
	storage := new(StorageMock)
	cache := new(CacheMock)
	service := sport.New(newNoopLogger(), storage, cache)

	cache.On("Get", mock.Anything, "sports:list", mock.Anything).Return(true, nil).Once()

	sports, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sports, 1)
	assert.Equal(t, "cached", sports[0].Name)
	storage.AssertNotCalled(t, "ListSports", mock.Anything)
}

func TestService_List_CacheMiss(t *testing.T) {
	storage := new(StorageMock)
	cache := new(CacheMock)
	service := sport.New(newNoopLogger(), storage, cache)

	cache.On("Get", mock.Anything, "sports:list", mock.Anything).Return(false, nil).Once()
	storage.On("ListSports", mock.Anything).Return([]*models.Sport{
		{ID: 1, Name: "boxing"},
		{ID: 2, Name: "yoga"},
	}, nil).Once()
	cache.On("Set", mock.Anything, "sports:list", mock.Anything, mock.Anything).Return(nil).Once()

	sports, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sports, 2)
	cache.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestService_Create_InvalidatesCache(t *testing.T) {
	storage := new(StorageMock)
	cache := new(CacheMock)
	service := sport.New(newNoopLogger(), storage, cache)

	storage.On("CreateSport", mock.Anything, "yoga").Return(5, nil).Once()
	cache.On("Invalidate", mock.Anything, "sports:list").Return(nil).Once()

	created, err := service.Create(context.Background(), "yoga")
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, "yoga", created.Name)
	cache.AssertExpectations(t)
}

func TestService_Create_Duplicate(t *testing.T) {
	storage := new(StorageMock)
	cache := new(CacheMock)
	service := sport.New(newNoopLogger(), storage, cache)

	storage.On("CreateSport", mock.Anything, "yoga").Return(0, errs.ErrSportExists).Once()

	created, err := service.Create(context.Background(), "yoga")
	assert.Nil(t, created)
	assert.ErrorIs(t, err, errs.ErrSportExists)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestService_Delete_InvalidatesCache(t *testing.T) {
	storage := new(StorageMock)
	cache := new(CacheMock)
	service := sport.New(newNoopLogger(), storage, cache)

	storage.On("DeleteSport", mock.Anything, 5).Return(nil).Once()
	cache.On("Invalidate", mock.Anything, "sports:list").Return(nil).Once()

	require.NoError(t, service.Delete(context.Background(), 5))
	cache.AssertExpectations(t)
}
