// Package sport реализует управление справочником видов спорта.
// Список кэшируется в Redis.
package sport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

const (
	cacheKeyList = "sports:list"
	cacheTTL     = 5 * time.Minute
)

// Storage описывает операции хранилища видов спорта.
type Storage interface {
	CreateSport(ctx context.Context, name string) (int, error)
	GetSport(ctx context.Context, id int) (*models.Sport, error)
	ListSports(ctx context.Context) ([]*models.Sport, error)
	UpdateSport(ctx context.Context, id int, name string) error
	DeleteSport(ctx context.Context, id int) error
}

// Cache описывает операции кэша списков.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует бизнес-логику видов спорта.
type Service struct {
	log     *slog.Logger
	storage Storage
	cache   Cache
}

// New создает сервис видов спорта.
func New(log *slog.Logger, storage Storage, cache Cache) *Service {
	return &Service{log: log, storage: storage, cache: cache}
}

// Create добавляет вид спорта и сбрасывает кэш списка.
func (s *Service) Create(ctx context.Context, name string) (*models.Sport, error) {
	const op = "services.sport.Create"
	id, err := s.storage.CreateSport(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	s.log.Info("sport created", slog.Int("sport_id", id))
	return &models.Sport{ID: id, Name: name}, nil
}

// Get возвращает вид спорта по идентификатору.
func (s *Service) Get(ctx context.Context, id int) (*models.Sport, error) {
	const op = "services.sport.Get"
	sport, err := s.storage.GetSport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sport, nil
}

// List возвращает все виды спорта, при возможности из кэша.
func (s *Service) List(ctx context.Context) ([]*models.Sport, error) {
	const op = "services.sport.List"

	var cached []*models.Sport
	found, err := s.cache.Get(ctx, cacheKeyList, &cached)
	if err != nil {
		s.log.Warn("failed to read sports from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	sports, err := s.storage.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, cacheKeyList, sports, cacheTTL); err != nil {
		s.log.Warn("failed to cache sports", sl.Err(err))
	}
	return sports, nil
}

// Update переименовывает вид спорта и сбрасывает кэш списка.
func (s *Service) Update(ctx context.Context, id int, name string) (*models.Sport, error) {
	const op = "services.sport.Update"
	if err := s.storage.UpdateSport(ctx, id, name); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	s.log.Info("sport updated", slog.Int("sport_id", id))
	return &models.Sport{ID: id, Name: name}, nil
}

// Delete удаляет вид спорта и сбрасывает кэш списка.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "services.sport.Delete"
	if err := s.storage.DeleteSport(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	s.log.Info("sport deleted", slog.Int("sport_id", id))
	return nil
}

func (s *Service) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheKeyList); err != nil {
		s.log.Warn("failed to invalidate sports cache", sl.Err(err))
	}
}
