package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maazali/collegia/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// InsertBatchTx bulk-inserts one class roster's attendance inside an open
// transaction using the CopyFrom protocol. Duplicate (student, date) pairs
// surface as a unique violation and abort the whole batch.
func (r *AttendanceRepository) InsertBatchTx(ctx context.Context, tx pgx.Tx, records []*models.AttendanceRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{rec.StudentID, rec.Date, rec.Status, rec.ClassName})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"attendance"},
		[]string{"student_id", "date", "status", "class_name"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return err
	}

	return nil
}

// HistoryByStudent fetches all past attendance records for a student,
// newest first.
func (r *AttendanceRepository) HistoryByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, date, status, class_name
		FROM attendance
		WHERE student_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.Date,
			&rec.Status,
			&rec.ClassName,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
