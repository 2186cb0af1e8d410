package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// FeeService handles invoice collection and per-student fee reporting on
// the amount-tracked ledger.
type FeeService struct {
	fees     FeeStore
	students StudentStore
	classes  ClassStore
	activity *ActivityService
	logger   zerolog.Logger
}

// NewFeeService creates a new fee service instance
func NewFeeService(fees FeeStore, students StudentStore, classes ClassStore, activity *ActivityService, logger zerolog.Logger) *FeeService {
	return &FeeService{
		fees:     fees,
		students: students,
		classes:  classes,
		activity: activity,
		logger:   logger,
	}
}

// CollectPayment marks an invoice Paid and logs the collected amount.
// Collecting against an already-Paid invoice re-confirms Paid and changes
// nothing, so a double click at the counter is harmless.
func (s *FeeService) CollectPayment(ctx context.Context, invoiceCode string, amount float64) error {
	if amount < 0 {
		return apperrors.ErrInvalidAmount
	}

	invoice, err := s.fees.GetByCode(ctx, invoiceCode)
	if err != nil {
		return err
	}

	if invoice.Status == models.PaymentPaid {
		return nil
	}

	updated, err := s.fees.MarkPaid(ctx, invoiceCode, amount)
	if err != nil {
		return err
	}
	if !updated {
		return apperrors.ErrInvoiceNotFound
	}

	s.logger.Info().Str("invoice", invoiceCode).Float64("amount", amount).Msg("Payment collected")
	s.activity.Record(ctx, models.ActivityFee,
		fmt.Sprintf("Invoice %s collected (%s)", invoiceCode, invoice.Month))

	return nil
}

// FeeStatus summarizes a student's fee position: invoice history, the
// class fee amount, total collected and what remains outstanding.
func (s *FeeService) FeeStatus(ctx context.Context, studentID int64) (*models.FeeStatusReport, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	history, err := s.fees.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	classFee, err := s.fees.MonthlyAmount(ctx, student.ClassName)
	if err != nil {
		return nil, err
	}

	report := &models.FeeStatusReport{
		History:  history,
		ClassFee: classFee,
	}
	for _, inv := range history {
		report.TotalPaid += inv.AmountPaid
		if inv.Status == models.PaymentPending {
			if owed := inv.AmountDue - inv.AmountPaid; owed > 0 {
				report.Remaining += owed
			}
		}
	}

	return report, nil
}

// OutstandingBalance returns the total amount a student still owes.
func (s *FeeService) OutstandingBalance(ctx context.Context, studentID int64) (float64, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return 0, err
	}
	return s.fees.OutstandingBalance(ctx, studentID)
}

// ListInvoices returns every invoice with the student name resolved.
func (s *FeeService) ListInvoices(ctx context.Context) ([]*models.InvoiceRow, error) {
	return s.fees.ListAll(ctx)
}

// GenerateMonthlyInvoices opens the month's Pending invoices for every
// Active student that lacks one and returns how many were created.
func (s *FeeService) GenerateMonthlyInvoices(ctx context.Context, month string) (int, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return 0, fmt.Errorf("%w: month label cannot be empty", apperrors.ErrValidationFailed)
	}

	created, err := s.fees.CreateMissingForMonth(ctx, month, func(int64) string {
		return newInvoiceCode()
	})
	if err != nil {
		return created, err
	}

	if created > 0 {
		s.activity.Record(ctx, models.ActivityFee,
			fmt.Sprintf("%d invoices generated for %s", created, month))
	}

	return created, nil
}

// SetClassFee upserts the monthly fee amount for a class.
func (s *FeeService) SetClassFee(ctx context.Context, className string, amount float64) error {
	if amount < 0 {
		return apperrors.ErrInvalidAmount
	}

	exists, err := s.classes.Exists(ctx, className)
	if err != nil {
		return fmt.Errorf("error checking class: %w", err)
	}
	if !exists {
		return apperrors.ErrClassNotFound
	}

	return s.fees.SetMonthlyAmount(ctx, className, amount)
}
