package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
	"github.com/maazali/collegia/internal/pkg/dberrors"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// Create inserts a new class
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	query := `
		INSERT INTO classes (class_code, class_name, capacity, room, shift)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		class.Code, class.Name, class.Capacity, class.Room, class.Shift)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrClassAlreadyExists
		}
		return fmt.Errorf("error creating class: %w", err)
	}

	return nil
}

// GetByName retrieves a class by its human name
func (r *ClassRepository) GetByName(ctx context.Context, name string) (*models.Class, error) {
	query := `
		SELECT class_code, class_name, capacity, room, shift
		FROM classes
		WHERE class_name = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, name).Scan(
		&class.Code,
		&class.Name,
		&class.Capacity,
		&class.Room,
		&class.Shift,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// Exists checks if a class name actually exists in the classes table.
func (r *ClassRepository) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classes WHERE class_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking class existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all classes with their live Active head counts.
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.ClassOccupancy, error) {
	query := `
		SELECT c.class_code, c.class_name, c.capacity, c.room, c.shift,
			(SELECT COUNT(*) FROM students s
			 WHERE s.class_name = c.class_name AND s.status = $1) AS active_students
		FROM classes c
		ORDER BY c.class_name
	`

	rows, err := r.db.Query(ctx, query, models.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.ClassOccupancy
	for rows.Next() {
		var c models.ClassOccupancy
		if err := rows.Scan(
			&c.Code,
			&c.Name,
			&c.Capacity,
			&c.Room,
			&c.Shift,
			&c.ActiveStudents,
		); err != nil {
			return nil, err
		}
		classes = append(classes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Names returns all class names, the shape dropdown menus need.
func (r *ClassRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT class_name FROM classes ORDER BY class_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// Delete removes a class by code. Deletion is refused while any Active
// student still references the class name.
func (r *ClassRepository) Delete(ctx context.Context, code string) error {
	var className string
	err := r.db.QueryRow(ctx,
		`SELECT class_name FROM classes WHERE class_code = $1`, code).Scan(&className)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("error retrieving class: %w", err)
	}

	var hasStudents bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE class_name = $1 AND status = $2)`,
		className, models.StatusActive).Scan(&hasStudents)
	if err != nil {
		return fmt.Errorf("error checking class students: %w", err)
	}

	if hasStudents {
		return apperrors.ErrClassHasStudents
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE class_code = $1`, code)
	if err != nil {
		return fmt.Errorf("error deleting class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}
