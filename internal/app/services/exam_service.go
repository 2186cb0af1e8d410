package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
	"github.com/maazali/collegia/internal/pkg/dberrors"
)

// ExamService handles exam scheduling and marks recording.
type ExamService struct {
	exams    ExamStore
	classes  ClassStore
	students StudentStore
	activity *ActivityService
	logger   zerolog.Logger
}

// NewExamService creates a new exam service instance
func NewExamService(exams ExamStore, classes ClassStore, students StudentStore, activity *ActivityService, logger zerolog.Logger) *ExamService {
	return &ExamService{
		exams:    exams,
		classes:  classes,
		students: students,
		activity: activity,
		logger:   logger,
	}
}

// Schedule creates a new exam for an existing class.
func (s *ExamService) Schedule(ctx context.Context, exam *models.Exam) error {
	if strings.TrimSpace(exam.Name) == "" {
		return fmt.Errorf("%w: exam name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.classes.Exists(ctx, exam.ClassName)
	if err != nil {
		return fmt.Errorf("error checking class: %w", err)
	}
	if !exists {
		return apperrors.ErrClassNotFound
	}

	if exam.RoomNo == "" {
		exam.RoomNo = "N/A"
	}

	if err := s.exams.Create(ctx, exam); err != nil {
		return err
	}

	s.activity.Record(ctx, models.ActivityExam,
		fmt.Sprintf("%s scheduled for %s", exam.Name, exam.ClassName))

	return nil
}

// List returns all scheduled exams.
func (s *ExamService) List(ctx context.Context) ([]*models.Exam, error) {
	return s.exams.GetAll(ctx)
}

// Delete removes a scheduled exam.
func (s *ExamService) Delete(ctx context.Context, id int64) error {
	if err := s.exams.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, models.ActivityExam, fmt.Sprintf("Exam #%d removed", id))
	return nil
}

// RecordMarks stores a student's result for one subject of an exam,
// overwriting any earlier entry for the same (student, exam, subject).
func (s *ExamService) RecordMarks(ctx context.Context, mark *models.Mark) error {
	if mark.MarksObtained < 0 || mark.TotalMarks <= 0 || mark.MarksObtained > mark.TotalMarks {
		return fmt.Errorf("%w: marks must be within 0..total", apperrors.ErrValidationFailed)
	}

	if _, err := s.students.GetByID(ctx, mark.StudentID); err != nil {
		return err
	}

	if err := s.exams.UpsertMark(ctx, mark); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrExamNotFound
		}
		return fmt.Errorf("error recording marks: %w", err)
	}

	return nil
}
