package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// CreateClass сохраняет новое занятие и возвращает его ID.
func (s *Storage) CreateClass(ctx context.Context, class *models.Class) (int, error) {
	const op = "storage.CreateClass"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO classes (sport_id, description, duration, created_by)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err := s.DB.QueryRowContext(ctx, query,
		class.SportID, class.Description, class.Duration, class.CreatedBy).Scan(&newID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return 0, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetClass возвращает занятие по ID вместе с названием вида спорта.
func (s *Storage) GetClass(ctx context.Context, id int) (*models.Class, error) {
	const op = "storage.GetClass"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.sport_id, sp.name, c.description, c.duration, c.created_by
			  FROM classes c
			  JOIN sports sp ON sp.id = c.sport_id
			  WHERE c.id = $1`
	var class models.Class
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&class.ID, &class.SportID,
		&class.SportName, &class.Description, &class.Duration, &class.CreatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &class, nil
}

// ListClasses возвращает занятия, опционально отфильтрованные по названиям видов спорта.
func (s *Storage) ListClasses(ctx context.Context, sportNames []string) ([]*models.Class, error) {
	const op = "storage.ListClasses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.sport_id, sp.name, c.description, c.duration, c.created_by
			  FROM classes c
			  JOIN sports sp ON sp.id = c.sport_id`
	var args []any
	if len(sportNames) > 0 {
		placeholders := make([]string, len(sportNames))
		for i, name := range sportNames {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, name)
		}
		query += ` WHERE sp.name IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY c.id`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Class
	for rows.Next() {
		var item models.Class
		if err := rows.Scan(&item.ID, &item.SportID, &item.SportName,
			&item.Description, &item.Duration, &item.CreatedBy); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateClass обновляет вид спорта, описание и длительность занятия.
func (s *Storage) UpdateClass(ctx context.Context, class *models.Class) error {
	const op = "storage.UpdateClass"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE classes
			  SET sport_id = $1, description = $2, duration = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		class.SportID, class.Description, class.Duration, class.ID)
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

// DeleteClass удаляет занятие вместе с расписанием и записями (каскадно).
func (s *Storage) DeleteClass(ctx context.Context, id int) error {
	const op = "storage.DeleteClass"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
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
