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

func newFeeFixture() (*FeeService, *fakeState) {
	state := newFakeState()
	log := zerolog.Nop()
	activity := NewActivityService(fakeActivityLog{state}, log)
	svc := NewFeeService(fakeFees{state}, fakeStudents{state}, fakeClasses{state}, activity, log)
	return svc, state
}

func addInvoice(state *fakeState, code string, studentID int64, month string, due float64) {
	state.invoiceSeq++
	state.invoices[code] = &models.FeeInvoice{
		ID:          state.invoiceSeq,
		InvoiceCode: code,
		StudentID:   studentID,
		Month:       month,
		AmountDue:   due,
		Status:      models.PaymentPending,
	}
}

func TestCollectPayment(t *testing.T) {
	svc, state := newFeeFixture()
	s := state.addStudent("A", "BSCS-1", "A", 1)
	addInvoice(state, "INV-1", s.EnrollmentID, "August 2026", 1500)

	require.NoError(t, svc.CollectPayment(context.Background(), "INV-1", 1500))

	inv := state.invoices["INV-1"]
	assert.Equal(t, models.PaymentPaid, inv.Status)
	assert.Equal(t, 1500.0, inv.AmountPaid)
}

func TestCollectPaymentIsIdempotent(t *testing.T) {
	svc, state := newFeeFixture()
	s := state.addStudent("A", "BSCS-1", "A", 1)
	addInvoice(state, "INV-1", s.EnrollmentID, "August 2026", 1500)

	require.NoError(t, svc.CollectPayment(context.Background(), "INV-1", 1500))
	require.NoError(t, svc.CollectPayment(context.Background(), "INV-1", 1500))

	inv := state.invoices["INV-1"]
	assert.Equal(t, models.PaymentPaid, inv.Status)
	assert.Equal(t, 1500.0, inv.AmountPaid, "a second collection must not double-count")
}

func TestCollectPaymentUnknownInvoice(t *testing.T) {
	svc, _ := newFeeFixture()

	err := svc.CollectPayment(context.Background(), "INV-missing", 100)

	assert.ErrorIs(t, err, apperrors.ErrInvoiceNotFound)
}

func TestCollectPaymentRejectsNegativeAmount(t *testing.T) {
	svc, _ := newFeeFixture()

	err := svc.CollectPayment(context.Background(), "INV-1", -5)

	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestFeeStatusTotals(t *testing.T) {
	svc, state := newFeeFixture()
	s := state.addStudent("A", "BSCS-1", "A", 1)
	state.feeAmounts["BSCS-1"] = 1500
	addInvoice(state, "INV-1", s.EnrollmentID, "July 2026", 1500)
	state.invoices["INV-1"].Status = models.PaymentPaid
	state.invoices["INV-1"].AmountPaid = 1500
	addInvoice(state, "INV-2", s.EnrollmentID, "August 2026", 1500)

	report, err := svc.FeeStatus(context.Background(), s.EnrollmentID)

	require.NoError(t, err)
	assert.Len(t, report.History, 2)
	assert.Equal(t, 1500.0, report.ClassFee)
	assert.Equal(t, 1500.0, report.TotalPaid)
	assert.Equal(t, 1500.0, report.Remaining)
}

func TestFeeStatusUnknownStudent(t *testing.T) {
	svc, _ := newFeeFixture()

	_, err := svc.FeeStatus(context.Background(), 42)

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestOutstandingBalanceCountsOnlyPending(t *testing.T) {
	svc, state := newFeeFixture()
	s := state.addStudent("A", "BSCS-1", "A", 1)
	addInvoice(state, "INV-1", s.EnrollmentID, "July 2026", 1500)
	state.invoices["INV-1"].Status = models.PaymentPaid
	state.invoices["INV-1"].AmountPaid = 1500
	addInvoice(state, "INV-2", s.EnrollmentID, "August 2026", 1500)

	balance, err := svc.OutstandingBalance(context.Background(), s.EnrollmentID)

	require.NoError(t, err)
	assert.Equal(t, 1500.0, balance)
}

func TestGenerateMonthlyInvoicesSkipsCovered(t *testing.T) {
	svc, state := newFeeFixture()
	state.feeAmounts["BSCS-1"] = 1500
	covered := state.addStudent("A", "BSCS-1", "A", 1)
	state.addStudent("B", "BSCS-1", "A", 2)
	left := state.addStudent("C", "BSCS-1", "A", 3)
	left.Status = models.StatusLeft
	addInvoice(state, "INV-1", covered.EnrollmentID, "August 2026", 1500)

	created, err := svc.GenerateMonthlyInvoices(context.Background(), "August 2026")

	require.NoError(t, err)
	assert.Equal(t, 1, created, "only the uncovered Active student gets an invoice")

	created, err = svc.GenerateMonthlyInvoices(context.Background(), "August 2026")
	require.NoError(t, err)
	assert.Zero(t, created, "rerunning the same month creates nothing")
}

func TestGenerateMonthlyInvoicesRejectsEmptyMonth(t *testing.T) {
	svc, _ := newFeeFixture()

	_, err := svc.GenerateMonthlyInvoices(context.Background(), "   ")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSetClassFee(t *testing.T) {
	svc, state := newFeeFixture()
	state.addClass("BSCS-1", "30")

	require.NoError(t, svc.SetClassFee(context.Background(), "BSCS-1", 1800))
	assert.Equal(t, 1800.0, state.feeAmounts["BSCS-1"])

	assert.ErrorIs(t, svc.SetClassFee(context.Background(), "BSCS-9", 1800), apperrors.ErrClassNotFound)
	assert.ErrorIs(t, svc.SetClassFee(context.Background(), "BSCS-1", -1), apperrors.ErrInvalidAmount)
}
