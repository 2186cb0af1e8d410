package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

func newRosterFixture() (*RosterService, *fakeState) {
	state := newFakeState()
	log := zerolog.Nop()
	activity := NewActivityService(fakeActivityLog{state}, log)
	svc := NewRosterService(&fakeTxRunner{state}, fakeStudents{state}, fakeClasses{state}, fakeFees{state}, activity, log)
	return svc, state
}

func activeRolls(t *testing.T, state *fakeState, class, section string) []int {
	t.Helper()
	students, err := fakeStudents{state}.ListActiveByClass(context.Background(), class, section)
	require.NoError(t, err)
	rolls := make([]int, 0, len(students))
	for _, s := range students {
		rolls = append(rolls, s.RollNo)
	}
	return rolls
}

func TestCompactRollsAssignsContiguousSequence(t *testing.T) {
	students := []*models.Student{
		{EnrollmentID: 3, RollNo: 7},
		{EnrollmentID: 1, RollNo: 2},
		{EnrollmentID: 2, RollNo: 5},
	}

	changes := compactRolls(students)

	require.Len(t, changes, 3)
	assert.Equal(t, rollChange{EnrollmentID: 1, RollNo: 1}, changes[0])
	assert.Equal(t, rollChange{EnrollmentID: 2, RollNo: 2}, changes[1])
	assert.Equal(t, rollChange{EnrollmentID: 3, RollNo: 3}, changes[2])
}

func TestCompactRollsIsIdempotent(t *testing.T) {
	students := []*models.Student{
		{EnrollmentID: 1, RollNo: 1},
		{EnrollmentID: 2, RollNo: 2},
		{EnrollmentID: 3, RollNo: 3},
	}

	assert.Empty(t, compactRolls(students))
}

func TestCompactRollsBreaksTiesByEnrollmentID(t *testing.T) {
	// Two students on the same roll can only happen mid-migration; the
	// older enrollment wins the lower number either way.
	students := []*models.Student{
		{EnrollmentID: 9, RollNo: 4},
		{EnrollmentID: 2, RollNo: 4},
	}

	changes := compactRolls(students)

	require.Len(t, changes, 2)
	assert.Equal(t, rollChange{EnrollmentID: 2, RollNo: 1}, changes[0])
	assert.Equal(t, rollChange{EnrollmentID: 9, RollNo: 2}, changes[1])
}

func TestEnrollCreatesStudentAndOpeningInvoice(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	state.feeAmounts["BSCS-1"] = 1500

	student, err := svc.Enroll(context.Background(), EnrollInput{
		Name:      "Hamza Tariq",
		ClassName: "BSCS-1",
		Section:   "A",
		RollNo:    1,
		Gender:    models.GenderMale,
	})

	require.NoError(t, err)
	assert.NotZero(t, student.EnrollmentID)
	assert.Equal(t, models.StatusActive, student.Status)

	invoices, err := fakeFees{state}.ListByStudent(context.Background(), student.EnrollmentID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, models.PaymentPending, invoices[0].Status)
	assert.Equal(t, 1500.0, invoices[0].AmountDue)
	assert.Contains(t, invoices[0].InvoiceCode, "INV-")
}

func TestEnrollRejectsUnknownClass(t *testing.T) {
	svc, _ := newRosterFixture()

	_, err := svc.Enroll(context.Background(), EnrollInput{
		Name:      "Hamza Tariq",
		ClassName: "BSCS-9",
		RollNo:    1,
		Gender:    models.GenderMale,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidClass)
}

func TestEnrollRejectsTakenRoll(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	state.addStudent("Sadia Khan", "BSCS-1", "A", 1)

	_, err := svc.Enroll(context.Background(), EnrollInput{
		Name:      "Hamza Tariq",
		ClassName: "BSCS-1",
		Section:   "A",
		RollNo:    1,
		Gender:    models.GenderMale,
	})

	assert.ErrorIs(t, err, apperrors.ErrRollTaken)
}

func TestEnrollRejectsInvalidInput(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")

	_, err := svc.Enroll(context.Background(), EnrollInput{Name: "  ", ClassName: "BSCS-1", RollNo: 1, Gender: models.GenderMale})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Enroll(context.Background(), EnrollInput{Name: "Hamza", ClassName: "BSCS-1", RollNo: 1, Gender: "Unknown"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGender)

	_, err = svc.Enroll(context.Background(), EnrollInput{Name: "Hamza", ClassName: "BSCS-1", RollNo: 0, Gender: models.GenderMale})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Enroll(context.Background(), EnrollInput{Name: "Hamza", ClassName: "BSCS-1", RollNo: models.RollSentinel, Gender: models.GenderMale})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollRollsBackStudentWhenInvoiceFails(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	state.failInvoiceInsert = true

	_, err := svc.Enroll(context.Background(), EnrollInput{
		Name:      "Hamza Tariq",
		ClassName: "BSCS-1",
		Section:   "A",
		RollNo:    1,
		Gender:    models.GenderMale,
	})

	require.Error(t, err)
	all, err := fakeStudents{state}.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "no student row may survive a failed enrollment")
}

func TestStudentLeavesCompactsClass(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	state.addStudent("A", "BSCS-1", "A", 1)
	leaver := state.addStudent("B", "BSCS-1", "A", 2)
	state.addStudent("C", "BSCS-1", "A", 3)
	state.addStudent("D", "BSCS-1", "A", 4)

	require.NoError(t, svc.StudentLeaves(context.Background(), leaver.EnrollmentID))

	assert.Equal(t, []int{1, 2, 3}, activeRolls(t, state, "BSCS-1", "A"))
	gone := state.students[leaver.EnrollmentID]
	assert.Equal(t, models.StatusLeft, gone.Status)
	assert.Equal(t, models.RollLeft, gone.RollNo)
}

func TestStudentLeavesUnknownStudent(t *testing.T) {
	svc, _ := newRosterFixture()

	err := svc.StudentLeaves(context.Background(), 42)

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentFailsMovesToEndAndStaysActive(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	failed := state.addStudent("A", "BSCS-1", "A", 1)
	state.addStudent("B", "BSCS-1", "A", 2)
	state.addStudent("C", "BSCS-1", "A", 3)

	require.NoError(t, svc.StudentFails(context.Background(), failed.EnrollmentID))

	assert.Equal(t, []int{1, 2, 3}, activeRolls(t, state, "BSCS-1", "A"))
	moved := state.students[failed.EnrollmentID]
	assert.Equal(t, 3, moved.RollNo, "failed student takes the last roll")
	assert.Equal(t, models.StatusActive, moved.Status, "failing reorders, it does not change status")
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	svc, state := newRosterFixture()
	s := state.addStudent("A", "BSCS-1", "A", 1)

	_, err := svc.ChangeStatus(context.Background(), s.EnrollmentID, "Expelled")

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestChangeStatusDoesNotTouchRoll(t *testing.T) {
	svc, state := newRosterFixture()
	s := state.addStudent("A", "BSCS-1", "A", 4)

	updated, err := svc.ChangeStatus(context.Background(), s.EnrollmentID, models.StatusGraduated)

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 4, state.students[s.EnrollmentID].RollNo)
	assert.Equal(t, models.StatusGraduated, state.students[s.EnrollmentID].Status)
}

func TestCapacityStats(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "5/20")
	state.addStudent("A", "BSCS-1", "A", 1)
	state.addStudent("B", "BSCS-1", "A", 2)
	state.addStudent("C", "BSCS-1", "B", 1)

	assert.Equal(t, "3/20", svc.CapacityStats(context.Background(), "BSCS-1"))
	assert.Equal(t, "0/0", svc.CapacityStats(context.Background(), "no-such-class"))
}

func TestUpdateProfileMoveReindexesBothClasses(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	state.addClass("BSCS-2", "30")
	state.addStudent("A", "BSCS-1", "A", 1)
	mover := state.addStudent("B", "BSCS-1", "A", 2)
	state.addStudent("C", "BSCS-1", "A", 3)
	state.addStudent("X", "BSCS-2", "A", 1)

	updated, err := svc.UpdateProfile(context.Background(), mover.EnrollmentID, models.StudentProfile{
		Name:      "B",
		RollNo:    5,
		ClassName: "BSCS-2",
		Section:   "A",
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, []int{1, 2}, activeRolls(t, state, "BSCS-1", "A"), "old class closes the gap")
	assert.Equal(t, []int{1, 2}, activeRolls(t, state, "BSCS-2", "A"), "new class absorbs the mover")
	assert.Equal(t, "BSCS-2", state.students[mover.EnrollmentID].ClassName)
}

func TestUpdateProfileRejectsMoveToUnknownClass(t *testing.T) {
	svc, state := newRosterFixture()
	state.addClass("BSCS-1", "30")
	s := state.addStudent("A", "BSCS-1", "A", 1)

	_, err := svc.UpdateProfile(context.Background(), s.EnrollmentID, models.StudentProfile{
		Name:      "A",
		RollNo:    1,
		ClassName: "BSCS-9",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidClass)
}

func TestListStudentsFiltersByClass(t *testing.T) {
	svc, state := newRosterFixture()
	state.addStudent("A", "BSCS-1", "A", 2)
	state.addStudent("B", "BSCS-1", "A", 1)
	left := state.addStudent("C", "BSCS-1", "A", 3)
	left.Status = models.StatusLeft
	state.addStudent("D", "BSCS-2", "A", 1)

	all, err := svc.ListStudents(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	roster, err := svc.ListStudents(context.Background(), "BSCS-1", "A")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "B", roster[0].Name, "roster comes back in roll order")
	assert.Equal(t, "A", roster[1].Name)
}
