package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	enrollment_id, name, father_name, class_name, section, roll_no,
	gender, status, joining_date, shift, region
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.EnrollmentID,
		&student.Name,
		&student.FatherName,
		&student.ClassName,
		&student.Section,
		&student.RollNo,
		&student.Gender,
		&student.Status,
		&student.JoiningDate,
		&student.Shift,
		&student.Region,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByID retrieves a student by enrollment id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE enrollment_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students regardless of status
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY enrollment_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

// ListActiveByClass retrieves the Active roster of a class/section ordered
// by roll number (enrollment id breaks ties).
func (r *StudentRepository) ListActiveByClass(ctx context.Context, className, section string) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE class_name = $1 AND section = $2 AND status = $3
		ORDER BY roll_no ASC, enrollment_id ASC
	`

	rows, err := r.db.Query(ctx, query, className, section, models.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

// ListActiveByClassTx is ListActiveByClass inside an open transaction, used
// by the reindex flow so the roster it compacts is the one it mutates.
func (r *StudentRepository) ListActiveByClassTx(ctx context.Context, tx pgx.Tx, className, section string) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE class_name = $1 AND section = $2 AND status = $3
		ORDER BY roll_no ASC, enrollment_id ASC
	`

	rows, err := tx.Query(ctx, query, className, section, models.StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountActiveByClass returns the number of Active students in a class.
func (r *StudentRepository) CountActiveByClass(ctx context.Context, className string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE class_name = $1 AND status = $2`,
		className, models.StatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// CountActive returns the number of Active students across all classes.
func (r *StudentRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE status = $1`, models.StatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// RollTaken checks if a roll number is held by an Active student of the
// class/section.
func (r *StudentRepository) RollTaken(ctx context.Context, className, section string, rollNo int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM students
			WHERE class_name = $1 AND section = $2 AND roll_no = $3 AND status = $4
		)`,
		className, section, rollNo, models.StatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking roll number: %w", err)
	}

	return exists, nil
}

// CreateTx inserts a new student inside an open transaction and fills in
// the assigned enrollment id.
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	query := `
		INSERT INTO students (name, father_name, class_name, section, roll_no,
			gender, status, joining_date, shift, region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING enrollment_id
	`

	err := tx.QueryRow(ctx, query,
		student.Name,
		student.FatherName,
		student.ClassName,
		student.Section,
		student.RollNo,
		student.Gender,
		student.Status,
		student.JoiningDate,
		student.Shift,
		student.Region,
	).Scan(&student.EnrollmentID)
	if err != nil {
		return err
	}

	return nil
}

// SetStatus updates only the status field and reports whether a row was
// affected.
func (r *StudentRepository) SetStatus(ctx context.Context, id int64, status models.StudentStatus) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET status = $1 WHERE enrollment_id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("error updating student status: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// SetStatusRollTx updates status and roll number together inside an open
// transaction (the leave flow retires the roll atomically).
func (r *StudentRepository) SetStatusRollTx(ctx context.Context, tx pgx.Tx, id int64, status models.StudentStatus, rollNo int) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE students SET status = $1, roll_no = $2 WHERE enrollment_id = $3`,
		status, rollNo, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetRollTx updates only the roll number inside an open transaction.
func (r *StudentRepository) SetRollTx(ctx context.Context, tx pgx.Tx, id int64, rollNo int) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE students SET roll_no = $1 WHERE enrollment_id = $2`, rollNo, id)
	if err != nil {
		return fmt.Errorf("error updating roll number: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateProfileTx overwrites the editable profile fields inside an open
// transaction and reports whether a row was affected.
func (r *StudentRepository) UpdateProfileTx(ctx context.Context, tx pgx.Tx, id int64, profile models.StudentProfile) (bool, error) {
	query := `
		UPDATE students
		SET name = $1, roll_no = $2, class_name = $3, section = $4, shift = $5, region = $6
		WHERE enrollment_id = $7
	`

	cmdTag, err := tx.Exec(ctx, query,
		profile.Name,
		profile.RollNo,
		profile.ClassName,
		profile.Section,
		profile.Shift,
		profile.Region,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("error updating student profile: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
