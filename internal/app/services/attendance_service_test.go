package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// fakeAttendance implements AttendanceStore and reproduces the two
// constraint failures the service maps: the (student, date) unique index
// and the student foreign key.
type fakeAttendance struct {
	state   *fakeState
	records []*models.AttendanceRecord
}

func (f *fakeAttendance) InsertBatchTx(ctx context.Context, tx pgx.Tx, records []*models.AttendanceRecord) error {
	for _, r := range records {
		if _, ok := f.state.students[r.StudentID]; !ok {
			return &pgconn.PgError{Code: "23503"}
		}
		for _, existing := range f.records {
			if existing.StudentID == r.StudentID && existing.Date.Equal(r.Date) {
				return &pgconn.PgError{Code: "23505"}
			}
		}
	}
	for _, r := range records {
		copied := *r
		f.records = append(f.records, &copied)
	}
	return nil
}

func (f *fakeAttendance) HistoryByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	var out []*models.AttendanceRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].StudentID == studentID {
			copied := *f.records[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func newAttendanceFixture() (*AttendanceService, *fakeState, *fakeAttendance) {
	state := newFakeState()
	store := &fakeAttendance{state: state}
	svc := NewAttendanceService(&fakeTxRunner{state}, store, fakeStudents{state}, zerolog.Nop())
	return svc, state, store
}

func TestSaveBatchStoresEveryEntry(t *testing.T) {
	svc, state, store := newAttendanceFixture()
	a := state.addStudent("A", "BSCS-1", "A", 1)
	b := state.addStudent("B", "BSCS-1", "A", 2)
	day := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	err := svc.SaveBatch(context.Background(), "BSCS-1", day, []AttendanceEntry{
		{StudentID: a.EnrollmentID, Status: models.AttendancePresent},
		{StudentID: b.EnrollmentID, Status: models.AttendanceAbsent},
	})

	require.NoError(t, err)
	assert.Len(t, store.records, 2)
}

func TestSaveBatchRejectsEmptyBatch(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	err := svc.SaveBatch(context.Background(), "BSCS-1", time.Now(), nil)

	assert.ErrorIs(t, err, apperrors.ErrEmptyAttendanceBatch)
}

func TestSaveBatchRejectsUnknownStatus(t *testing.T) {
	svc, state, _ := newAttendanceFixture()
	a := state.addStudent("A", "BSCS-1", "A", 1)

	err := svc.SaveBatch(context.Background(), "BSCS-1", time.Now(), []AttendanceEntry{
		{StudentID: a.EnrollmentID, Status: "Sleeping"},
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidAttendanceStatus)
}

func TestSaveBatchDuplicateDay(t *testing.T) {
	svc, state, _ := newAttendanceFixture()
	a := state.addStudent("A", "BSCS-1", "A", 1)
	day := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	entries := []AttendanceEntry{{StudentID: a.EnrollmentID, Status: models.AttendancePresent}}

	require.NoError(t, svc.SaveBatch(context.Background(), "BSCS-1", day, entries))
	err := svc.SaveBatch(context.Background(), "BSCS-1", day, entries)

	assert.ErrorIs(t, err, apperrors.ErrDuplicateAttendance)
}

func TestSaveBatchUnknownStudent(t *testing.T) {
	svc, _, store := newAttendanceFixture()

	err := svc.SaveBatch(context.Background(), "BSCS-1", time.Now(), []AttendanceEntry{
		{StudentID: 42, Status: models.AttendancePresent},
	})

	assert.ErrorIs(t, err, apperrors.ErrAttendanceStudentMissing)
	assert.Empty(t, store.records, "a failed batch stores nothing")
}

func TestHistoryRequiresExistingStudent(t *testing.T) {
	svc, _, _ := newAttendanceFixture()

	_, err := svc.History(context.Background(), 42)

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestHistoryNewestFirst(t *testing.T) {
	svc, state, _ := newAttendanceFixture()
	a := state.addStudent("A", "BSCS-1", "A", 1)
	d1 := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SaveBatch(context.Background(), "BSCS-1", d1, []AttendanceEntry{{StudentID: a.EnrollmentID, Status: models.AttendancePresent}}))
	require.NoError(t, svc.SaveBatch(context.Background(), "BSCS-1", d2, []AttendanceEntry{{StudentID: a.EnrollmentID, Status: models.AttendanceLate}}))

	history, err := svc.History(context.Background(), a.EnrollmentID)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Date.After(history[1].Date))
}
