package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// CreateEnrollment записывает пользователя на занятие и возвращает запись.
// Повторная запись на то же занятие запрещена уникальным индексом.
func (s *Storage) CreateEnrollment(ctx context.Context, userID, classID int) (*models.Enrollment, error) {
	const op = "storage.CreateEnrollment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO enrollments (user_id, class_id)
			  VALUES ($1, $2)
			  RETURNING id, enrolled_at`
	e := &models.Enrollment{UserID: userID, ClassID: classID}
	if err := s.DB.QueryRowContext(ctx, query, userID, classID).Scan(&e.ID, &e.EnrolledAt); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrAlreadyEnrolled)
		}
		if isPgError(err, pgForeignKeyViolation) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

// ListEnrollments возвращает все записи с email пользователя и описанием занятия.
func (s *Storage) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	const op = "storage.ListEnrollments"
	return s.listEnrollments(ctx, op, `
		SELECT e.id, e.user_id, u.email, e.class_id, c.description, e.enrolled_at
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		JOIN classes c ON c.id = e.class_id
		ORDER BY e.id`)
}

// ListEnrollmentsByClass возвращает записи на конкретное занятие.
func (s *Storage) ListEnrollmentsByClass(ctx context.Context, classID int) ([]*models.Enrollment, error) {
	const op = "storage.ListEnrollmentsByClass"
	return s.listEnrollments(ctx, op, `
		SELECT e.id, e.user_id, u.email, e.class_id, c.description, e.enrolled_at
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		JOIN classes c ON c.id = e.class_id
		WHERE e.class_id = $1
		ORDER BY e.id`, classID)
}

// ListEnrollmentsByUser возвращает записи конкретного пользователя.
func (s *Storage) ListEnrollmentsByUser(ctx context.Context, userID int) ([]*models.Enrollment, error) {
	const op = "storage.ListEnrollmentsByUser"
	return s.listEnrollments(ctx, op, `
		SELECT e.id, e.user_id, u.email, e.class_id, c.description, e.enrolled_at
		FROM enrollments e
		JOIN users u ON u.id = e.user_id
		JOIN classes c ON c.id = e.class_id
		WHERE e.user_id = $1
		ORDER BY e.id`, userID)
}

func (s *Storage) listEnrollments(ctx context.Context, op, query string, args ...any) ([]*models.Enrollment, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Enrollment
	for rows.Next() {
		var item models.Enrollment
		if err := rows.Scan(&item.ID, &item.UserID, &item.UserEmail,
			&item.ClassID, &item.ClassDesc, &item.EnrolledAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
