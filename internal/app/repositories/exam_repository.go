package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// ExamRepository handles database operations for exams and marks
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
	}
}

// Create schedules a new exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (exam_name, class_name, exam_date, room_no)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		exam.Name, exam.ClassName, exam.Date, exam.RoomNo).Scan(&exam.ID)
	if err != nil {
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetAll retrieves all scheduled exams
func (r *ExamRepository) GetAll(ctx context.Context) ([]*models.Exam, error) {
	query := `
		SELECT id, exam_name, class_name, exam_date, room_no
		FROM exams
		ORDER BY exam_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		var exam models.Exam
		if err := rows.Scan(
			&exam.ID,
			&exam.Name,
			&exam.ClassName,
			&exam.Date,
			&exam.RoomNo,
		); err != nil {
			return nil, err
		}
		exams = append(exams, &exam)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exams, nil
}

// Delete permanently removes an exam
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// UpsertMark records a student's result; re-recording the same
// (student, exam, subject) overwrites the obtained and total marks.
func (r *ExamRepository) UpsertMark(ctx context.Context, mark *models.Mark) error {
	query := `
		INSERT INTO marks (student_id, exam_id, subject, marks_obtained, total_marks)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, exam_id, subject)
		DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained, total_marks = EXCLUDED.total_marks
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		mark.StudentID, mark.ExamID, mark.Subject, mark.MarksObtained, mark.TotalMarks,
	).Scan(&mark.ID)
	if err != nil {
		return err
	}

	return nil
}
