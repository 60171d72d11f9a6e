// Package class реализует управление занятиями спортивного комплекса.
// Нефильтрованный список кэшируется в Redis.
package class

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

const (
	cacheKeyList = "classes:list"
	cacheTTL     = 5 * time.Minute
)

// Storage описывает операции хранилища занятий.
type Storage interface {
	CreateClass(ctx context.Context, class *models.Class) (int, error)
	GetClass(ctx context.Context, id int) (*models.Class, error)
	ListClasses(ctx context.Context, sportNames []string) ([]*models.Class, error)
	UpdateClass(ctx context.Context, class *models.Class) error
	DeleteClass(ctx context.Context, id int) error
	ListSchedulesByClass(ctx context.Context, classID int) ([]*models.Schedule, error)
}

// Cache описывает операции кэша списков.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service реализует бизнес-логику занятий.
type Service struct {
	log     *slog.Logger
	storage Storage
	cache   Cache
}

// New создает сервис занятий.
func New(log *slog.Logger, storage Storage, cache Cache) *Service {
	return &Service{log: log, storage: storage, cache: cache}
}

// Create добавляет занятие от имени администратора createdBy.
func (s *Service) Create(ctx context.Context, class *models.Class, createdBy int) (*models.Class, error) {
	const op = "services.class.Create"
	class.CreatedBy = createdBy
	id, err := s.storage.CreateClass(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	class.ID = id
	s.invalidateList(ctx)
	s.log.Info("class created", slog.Int("class_id", id), slog.Int("created_by", createdBy))
	return class, nil
}

// Get возвращает занятие вместе с его расписаниями.
func (s *Service) Get(ctx context.Context, id int) (*models.Class, error) {
	const op = "services.class.Get"
	class, err := s.storage.GetClass(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	schedules, err := s.storage.ListSchedulesByClass(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	class.Schedules = schedules
	return class, nil
}

// List возвращает занятия, опционально отфильтрованные по названиям
// видов спорта. Нефильтрованный список берется из кэша при попадании.
func (s *Service) List(ctx context.Context, sportNames []string) ([]*models.Class, error) {
	const op = "services.class.List"

	if len(sportNames) == 0 {
		var cached []*models.Class
		found, err := s.cache.Get(ctx, cacheKeyList, &cached)
		if err != nil {
			s.log.Warn("failed to read classes from cache", sl.Err(err))
		}
		if found {
			return cached, nil
		}
	}

	classes, err := s.storage.ListClasses(ctx, sportNames)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(sportNames) == 0 {
		if err := s.cache.Set(ctx, cacheKeyList, classes, cacheTTL); err != nil {
			s.log.Warn("failed to cache classes", sl.Err(err))
		}
	}
	return classes, nil
}

// Update изменяет занятие и сбрасывает кэш списка.
func (s *Service) Update(ctx context.Context, class *models.Class) (*models.Class, error) {
	const op = "services.class.Update"
	if err := s.storage.UpdateClass(ctx, class); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	s.log.Info("class updated", slog.Int("class_id", class.ID))
	return s.Get(ctx, class.ID)
}

// Delete удаляет занятие и сбрасывает кэш списка.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "services.class.Delete"
	if err := s.storage.DeleteClass(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList(ctx)
	s.log.Info("class deleted", slog.Int("class_id", id))
	return nil
}

func (s *Service) invalidateList(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheKeyList); err != nil {
		s.log.Warn("failed to invalidate classes cache", sl.Err(err))
	}
}
