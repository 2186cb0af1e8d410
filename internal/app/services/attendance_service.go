package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
	"github.com/maazali/collegia/internal/pkg/dberrors"
)

// AttendanceService handles batch attendance capture and per-student
// history.
type AttendanceService struct {
	db         TxRunner
	attendance AttendanceStore
	students   StudentStore
	logger     zerolog.Logger
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(db TxRunner, attendance AttendanceStore, students StudentStore, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{
		db:         db,
		attendance: attendance,
		students:   students,
		logger:     logger,
	}
}

// AttendanceEntry is one student's state in a batch save.
type AttendanceEntry struct {
	StudentID int64
	Status    models.AttendanceStatus
}

// SaveBatch stores one class roster's attendance for a date as a single
// unit: either every row lands or none does. A student already marked for
// the date fails the batch with a constraint error.
func (s *AttendanceService) SaveBatch(ctx context.Context, className string, date time.Time, entries []AttendanceEntry) error {
	if len(entries) == 0 {
		return apperrors.ErrEmptyAttendanceBatch
	}

	records := make([]*models.AttendanceRecord, 0, len(entries))
	for _, e := range entries {
		if !e.Status.Valid() {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidAttendanceStatus, e.Status)
		}
		records = append(records, &models.AttendanceRecord{
			StudentID: e.StudentID,
			Date:      date,
			Status:    e.Status,
			ClassName: className,
		})
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.attendance.InsertBatchTx(ctx, tx, records)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateAttendance
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAttendanceStudentMissing
		}
		return fmt.Errorf("attendance batch save failed: %w", err)
	}

	s.logger.Info().Str("class", className).Int("records", len(records)).
		Time("date", date).Msg("Attendance batch saved")

	return nil
}

// History returns all past attendance for a student, newest first.
func (s *AttendanceService) History(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.attendance.HistoryByStudent(ctx, studentID)
}
