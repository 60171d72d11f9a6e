package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/sport-complex/internal/lib/errs"
	"github.com/magabrotheeeer/sport-complex/internal/models"
)

// CreateSport добавляет вид спорта в каталог и возвращает его ID.
func (s *Storage) CreateSport(ctx context.Context, name string) (int, error) {
	const op = "storage.CreateSport"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO sports (name) VALUES ($1) RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&newID); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return 0, fmt.Errorf("%s: %w", op, errs.ErrSportExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSport возвращает вид спорта по ID.
func (s *Storage) GetSport(ctx context.Context, id int) (*models.Sport, error) {
	const op = "storage.GetSport"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var sport models.Sport
	query := `SELECT id, name FROM sports WHERE id = $1`
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&sport.ID, &sport.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sport, nil
}

// ListSports возвращает каталог видов спорта, отсортированный по названию.
func (s *Storage) ListSports(ctx context.Context) ([]*models.Sport, error) {
	const op = "storage.ListSports"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT id, name FROM sports ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Sport
	for rows.Next() {
		var item models.Sport
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSport переименовывает вид спорта.
func (s *Storage) UpdateSport(ctx context.Context, id int, name string) error {
	const op = "storage.UpdateSport"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `UPDATE sports SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("%s: %w", op, errs.ErrSportExists)
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

// DeleteSport удаляет вид спорта вместе с занятиями (каскадно).
func (s *Storage) DeleteSport(ctx context.Context, id int) error {
	const op = "storage.DeleteSport"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM sports WHERE id = $1`, id)
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
