// Package enrollment реализует запись пользователей на занятия.
// О каждой записи публикуется событие в RabbitMQ для уведомления
// владельца занятия.
package enrollment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/sport-complex/internal/lib/sl"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// Storage описывает операции хранилища записей на занятия.
type Storage interface {
	CreateEnrollment(ctx context.Context, userID, classID int) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	ListEnrollmentsByClass(ctx context.Context, classID int) ([]*models.Enrollment, error)
	ListEnrollmentsByUser(ctx context.Context, userID int) ([]*models.Enrollment, error)
	GetClass(ctx context.Context, id int) (*models.Class, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

// EventPublisher публикует событие о записи на занятие.
type EventPublisher interface {
	PublishUserEnrolled(event *models.UserEnrolledEvent) error
}

// Service реализует бизнес-логику записей на занятия.
type Service struct {
	log       *slog.Logger
	storage   Storage
	publisher EventPublisher
}

// New создает сервис записей.
func New(log *slog.Logger, storage Storage, publisher EventPublisher) *Service {
	return &Service{log: log, storage: storage, publisher: publisher}
}

// Create записывает пользователя на занятие и публикует событие
// для уведомления владельца занятия. Ошибка публикации не отменяет
// уже созданную запись.
func (s *Service) Create(ctx context.Context, userID, classID int) (*models.Enrollment, error) {
	const op = "services.enrollment.Create"

	class, err := s.storage.GetClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	enrollment, err := s.storage.CreateEnrollment(ctx, userID, classID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	enrollment.UserEmail = user.Email
	enrollment.ClassDesc = class.Description

	event := &models.UserEnrolledEvent{
		EventID:   uuid.NewString(),
		UserEmail: user.Email,
		ClassDesc: class.Description,
		AdminID:   class.CreatedBy,
	}
	if err := s.publisher.PublishUserEnrolled(event); err != nil {
		s.log.Error("failed to publish enrollment event", sl.Err(err),
			slog.Int("enrollment_id", enrollment.ID))
	}

	s.log.Info("user enrolled",
		slog.Int("user_id", userID),
		slog.Int("class_id", classID),
		slog.Int("enrollment_id", enrollment.ID))
	return enrollment, nil
}

// List возвращает все записи на занятия.
func (s *Service) List(ctx context.Context) ([]*models.Enrollment, error) {
	const op = "services.enrollment.List"
	enrollments, err := s.storage.ListEnrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return enrollments, nil
}

// ListByClass возвращает записи на конкретное занятие.
func (s *Service) ListByClass(ctx context.Context, classID int) ([]*models.Enrollment, error) {
	const op = "services.enrollment.ListByClass"
	enrollments, err := s.storage.ListEnrollmentsByClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return enrollments, nil
}

// ListByUser возвращает записи конкретного пользователя.
func (s *Service) ListByUser(ctx context.Context, userID int) ([]*models.Enrollment, error) {
	const op = "services.enrollment.ListByUser"
	enrollments, err := s.storage.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return enrollments, nil
}
