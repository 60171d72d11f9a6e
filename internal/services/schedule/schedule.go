// Package schedule реализует управление расписаниями занятий.
package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Storage описывает операции хранилища расписаний.
type Storage interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (int, error)
	GetSchedule(ctx context.Context, id int) (*models.Schedule, error)
	ListSchedules(ctx context.Context) ([]*models.Schedule, error)
	ListSchedulesByClass(ctx context.Context, classID int) ([]*models.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
	DeleteSchedule(ctx context.Context, id int) error
}

// Service реализует бизнес-логику расписаний.
type Service struct {
	log     *slog.Logger
	storage Storage
}

// New создает сервис расписаний.
func New(log *slog.Logger, storage Storage) *Service {
	return &Service{log: log, storage: storage}
}

// Create добавляет расписание для занятия.
func (s *Service) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	const op = "services.schedule.Create"
	id, err := s.storage.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	schedule.ID = id
	s.log.Info("schedule created", slog.Int("schedule_id", id), slog.Int("class_id", schedule.ClassID))
	return schedule, nil
}

// Get возвращает расписание по идентификатору.
func (s *Service) Get(ctx context.Context, id int) (*models.Schedule, error) {
	const op = "services.schedule.Get"
	schedule, err := s.storage.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return schedule, nil
}

// List возвращает расписания, опционально только для одного занятия.
// classID <= 0 означает отсутствие фильтра.
func (s *Service) List(ctx context.Context, classID int) ([]*models.Schedule, error) {
	const op = "services.schedule.List"
	var (
		schedules []*models.Schedule
		err       error
	)
	if classID > 0 {
		schedules, err = s.storage.ListSchedulesByClass(ctx, classID)
	} else {
		schedules, err = s.storage.ListSchedules(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return schedules, nil
}

// Update изменяет расписание.
func (s *Service) Update(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	const op = "services.schedule.Update"
	if err := s.storage.UpdateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("schedule updated", slog.Int("schedule_id", schedule.ID))
	return schedule, nil
}

// Delete удаляет расписание.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "services.schedule.Delete"
	if err := s.storage.DeleteSchedule(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("schedule deleted", slog.Int("schedule_id", id))
	return nil
}
