package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// CreateSchedule добавляет сеанс в расписание и возвращает его ID.
func (s *Storage) CreateSchedule(ctx context.Context, schedule *models.Schedule) (int, error) {
	const op = "storage.CreateSchedule"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO schedules (class_id, date, duration)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query,
		schedule.ClassID, schedule.Date, schedule.Duration).Scan(&newID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return 0, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSchedule возвращает сеанс по ID.
func (s *Storage) GetSchedule(ctx context.Context, id int) (*models.Schedule, error) {
	const op = "storage.GetSchedule"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var schedule models.Schedule
	query := `SELECT id, class_id, date, duration FROM schedules WHERE id = $1`
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&schedule.ID, &schedule.ClassID,
		&schedule.Date, &schedule.Duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &schedule, nil
}

// ListSchedules возвращает все сеансы, отсортированные по дате.
func (s *Storage) ListSchedules(ctx context.Context) ([]*models.Schedule, error) {
	const op = "storage.ListSchedules"
	return s.listSchedules(ctx, op, `SELECT id, class_id, date, duration FROM schedules ORDER BY date`)
}

// ListSchedulesByClass возвращает сеансы одного занятия, отсортированные по дате.
func (s *Storage) ListSchedulesByClass(ctx context.Context, classID int) ([]*models.Schedule, error) {
	const op = "storage.ListSchedulesByClass"
	return s.listSchedules(ctx, op,
		`SELECT id, class_id, date, duration FROM schedules WHERE class_id = $1 ORDER BY date`, classID)
}

// UpdateSchedule обновляет занятие, дату и длительность сеанса.
func (s *Storage) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	const op = "storage.UpdateSchedule"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE schedules
			  SET class_id = $1, date = $2, duration = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		schedule.ClassID, schedule.Date, schedule.Duration, schedule.ID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, errs.ErrNotFound)
	}
	return nil
}

// DeleteSchedule удаляет сеанс из расписания.
func (s *Storage) DeleteSchedule(ctx context.Context, id int) error {
	const op = "storage.DeleteSchedule"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, errs.ErrNotFound)
	}
	return nil
}

func (s *Storage) listSchedules(ctx context.Context, op, query string, args ...any) ([]*models.Schedule, error) {
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

	var result []*models.Schedule
	for rows.Next() {
		var item models.Schedule
		if err := rows.Scan(&item.ID, &item.ClassID, &item.Date, &item.Duration); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
