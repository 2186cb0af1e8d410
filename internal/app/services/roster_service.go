package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
	"github.com/maazali/collegia/internal/pkg/dberrors"
)

// RosterService owns enrollment, student status transitions and the
// roll-number bookkeeping that keeps every class numbered 1..N.
type RosterService struct {
	db       TxRunner
	students StudentStore
	classes  ClassStore
	fees     FeeStore
	activity *ActivityService
	logger   zerolog.Logger
}

// NewRosterService creates a new roster service instance
func NewRosterService(db TxRunner, students StudentStore, classes ClassStore, fees FeeStore, activity *ActivityService, logger zerolog.Logger) *RosterService {
	return &RosterService{
		db:       db,
		students: students,
		classes:  classes,
		fees:     fees,
		activity: activity,
		logger:   logger,
	}
}

// EnrollInput carries the fields an enrollment needs from the caller. The
// roll number is assigned by the caller, not computed here.
type EnrollInput struct {
	Name       string
	FatherName string
	ClassName  string
	Section    string
	RollNo     int
	Gender     models.Gender
	Shift      string
	Region     string
}

// Enroll registers a new Active student and opens their first fee invoice
// for the current month. Both inserts run in one transaction: if the
// invoice cannot be created the student row is rolled back too.
func (s *RosterService) Enroll(ctx context.Context, in EnrollInput) (*models.Student, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !in.Gender.Valid() {
		return nil, apperrors.ErrInvalidGender
	}
	if in.RollNo <= 0 || in.RollNo >= models.RollSentinel {
		return nil, fmt.Errorf("%w: roll number must be between 1 and %d", apperrors.ErrValidationFailed, models.RollSentinel-1)
	}

	// The presentation layer checks class existence before calling, but the
	// engine re-validates: enrollment against a nonexistent class is refused.
	exists, err := s.classes.Exists(ctx, in.ClassName)
	if err != nil {
		return nil, fmt.Errorf("error checking class: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInvalidClass
	}

	taken, err := s.students.RollTaken(ctx, in.ClassName, in.Section, in.RollNo)
	if err != nil {
		return nil, fmt.Errorf("error checking roll number: %w", err)
	}
	if taken {
		return nil, apperrors.ErrRollTaken
	}

	monthly, err := s.fees.MonthlyAmount(ctx, in.ClassName)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:        in.Name,
		FatherName:  in.FatherName,
		ClassName:   in.ClassName,
		Section:     in.Section,
		RollNo:      in.RollNo,
		Gender:      in.Gender,
		Status:      models.StatusActive,
		JoiningDate: time.Now(),
		Shift:       in.Shift,
		Region:      in.Region,
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.students.CreateTx(ctx, tx, student); err != nil {
			return err
		}

		invoice := &models.FeeInvoice{
			InvoiceCode: newInvoiceCode(),
			StudentID:   student.EnrollmentID,
			Month:       time.Now().Format("January 2006"),
			AmountDue:   monthly,
			Status:      models.PaymentPending,
		}
		return s.fees.CreateInvoiceTx(ctx, tx, invoice)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrRollTaken
		}
		return nil, fmt.Errorf("enrollment failed: %w", err)
	}

	s.logger.Info().
		Int64("enrollmentId", student.EnrollmentID).
		Str("class", student.ClassName).
		Int("roll", student.RollNo).
		Msg("Student enrolled")
	s.activity.Record(ctx, models.ActivityStudent,
		fmt.Sprintf("%s enrolled in %s", student.Name, student.ClassName))

	return student, nil
}

// ChangeStatus is the plain field update used for the simple
// Active/Dropout/Graduated transitions. It never touches roll numbers.
func (s *RosterService) ChangeStatus(ctx context.Context, id int64, status models.StudentStatus) (bool, error) {
	if !status.Valid() {
		return false, apperrors.ErrInvalidStatus
	}

	updated, err := s.students.SetStatus(ctx, id, status)
	if err != nil {
		return false, err
	}
	if updated {
		s.activity.Record(ctx, models.ActivityStudent,
			fmt.Sprintf("Student #%d marked %s", id, status))
	}

	return updated, nil
}

// StudentLeaves retires a student: status Left, roll number 0, and the
// former class compacted back to 1..N — all in one transaction.
func (s *RosterService) StudentLeaves(ctx context.Context, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.students.SetStatusRollTx(ctx, tx, id, models.StatusLeft, models.RollLeft); err != nil {
			return err
		}
		return s.reindexTx(ctx, tx, student.ClassName, student.Section)
	})
	if err != nil {
		return fmt.Errorf("leave processing failed: %w", err)
	}

	s.logger.Info().Int64("enrollmentId", id).Str("class", student.ClassName).Msg("Student left, class re-indexed")
	s.activity.Record(ctx, models.ActivityStudent,
		fmt.Sprintf("%s left %s", student.Name, student.ClassName))

	return nil
}

// StudentFails moves a failed student to the end of the class order by
// parking them on the sentinel roll and reindexing. Status is untouched;
// failing only reorders.
func (s *RosterService) StudentFails(ctx context.Context, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.students.SetRollTx(ctx, tx, id, models.RollSentinel); err != nil {
			return err
		}
		return s.reindexTx(ctx, tx, student.ClassName, student.Section)
	})
	if err != nil {
		return fmt.Errorf("fail processing failed: %w", err)
	}

	s.activity.Record(ctx, models.ActivityStudent,
		fmt.Sprintf("%s moved to last position in %s", student.Name, student.ClassName))

	return nil
}

// Reindex compacts a class on demand. The leave/fail flows run the same
// compaction inside their own transactions.
func (s *RosterService) Reindex(ctx context.Context, className, section string) error {
	return s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.reindexTx(ctx, tx, className, section)
	})
}

func (s *RosterService) reindexTx(ctx context.Context, tx pgx.Tx, className, section string) error {
	actives, err := s.students.ListActiveByClassTx(ctx, tx, className, section)
	if err != nil {
		return err
	}

	for _, change := range compactRolls(actives) {
		if err := s.students.SetRollTx(ctx, tx, change.EnrollmentID, change.RollNo); err != nil {
			return err
		}
	}

	return nil
}

// rollChange is one roll-number reassignment produced by compaction.
type rollChange struct {
	EnrollmentID int64
	RollNo       int
}

// compactRolls computes the reassignments that renumber an active roster
// 1..N. Students keep their relative order by current roll number, with
// enrollment id breaking ties, so the result is deterministic and running
// it again over the compacted roster yields no changes.
func compactRolls(students []*models.Student) []rollChange {
	ordered := make([]*models.Student, len(students))
	copy(ordered, students)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].RollNo != ordered[j].RollNo {
			return ordered[i].RollNo < ordered[j].RollNo
		}
		return ordered[i].EnrollmentID < ordered[j].EnrollmentID
	})

	var changes []rollChange
	for i, student := range ordered {
		want := i + 1
		if student.RollNo != want {
			changes = append(changes, rollChange{EnrollmentID: student.EnrollmentID, RollNo: want})
		}
	}

	return changes
}

// CapacityStats returns the "current/capacity" display string for a class.
// A missing class or unreadable capacity degrades to zero rather than
// failing.
func (s *RosterService) CapacityStats(ctx context.Context, className string) string {
	count, err := s.students.CountActiveByClass(ctx, className)
	if err != nil {
		s.logger.Error().Err(err).Str("class", className).Msg("Error calculating capacity stats")
		return "0/0"
	}

	class, err := s.classes.GetByName(ctx, className)
	if err != nil {
		return "0/0"
	}

	return fmt.Sprintf("%d/%d", count, class.DeclaredCapacity())
}

// UpdateProfile overwrites the editable fields of a student. When the edit
// moves the student to another class or section, both rosters are
// compacted in the same transaction so neither is left with a gap or a
// duplicate roll.
func (s *RosterService) UpdateProfile(ctx context.Context, id int64, profile models.StudentProfile) (bool, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	moved := profile.ClassName != student.ClassName || profile.Section != student.Section
	if moved {
		exists, err := s.classes.Exists(ctx, profile.ClassName)
		if err != nil {
			return false, fmt.Errorf("error checking class: %w", err)
		}
		if !exists {
			return false, apperrors.ErrInvalidClass
		}
	}

	var updated bool
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		updated, err = s.students.UpdateProfileTx(ctx, tx, id, profile)
		if err != nil {
			return err
		}
		if !updated || !moved {
			return nil
		}
		if err := s.reindexTx(ctx, tx, student.ClassName, student.Section); err != nil {
			return err
		}
		return s.reindexTx(ctx, tx, profile.ClassName, profile.Section)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return false, apperrors.ErrRollTaken
		}
		return false, err
	}

	return updated, nil
}

// GetStudent retrieves one student by enrollment id.
func (s *RosterService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// ListStudents returns all students, or the Active roster of one class in
// roll order when className is non-empty.
func (s *RosterService) ListStudents(ctx context.Context, className, section string) ([]*models.Student, error) {
	if className == "" {
		return s.students.GetAll(ctx)
	}
	return s.students.ListActiveByClass(ctx, className, section)
}
