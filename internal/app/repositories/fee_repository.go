package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// FeeRepository handles database operations for fee invoices and the
// per-class fee structure.
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

const invoiceColumns = `
	id, invoice_code, student_id, month, amount_due, amount_paid,
	payment_status, paid_at
`

func scanInvoice(row pgx.Row) (*models.FeeInvoice, error) {
	var inv models.FeeInvoice
	err := row.Scan(
		&inv.ID,
		&inv.InvoiceCode,
		&inv.StudentID,
		&inv.Month,
		&inv.AmountDue,
		&inv.AmountPaid,
		&inv.Status,
		&inv.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoiceTx inserts an invoice inside an open transaction. Enrollment
// uses this so the student insert and the first invoice commit together.
func (r *FeeRepository) CreateInvoiceTx(ctx context.Context, tx pgx.Tx, inv *models.FeeInvoice) error {
	query := `
		INSERT INTO fees (invoice_code, student_id, month, amount_due, amount_paid, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		inv.InvoiceCode, inv.StudentID, inv.Month, inv.AmountDue, inv.AmountPaid, inv.Status,
	).Scan(&inv.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByCode retrieves an invoice by its code
func (r *FeeRepository) GetByCode(ctx context.Context, code string) (*models.FeeInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM fees WHERE invoice_code = $1`

	inv, err := scanInvoice(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("error retrieving invoice: %w", err)
	}

	return inv, nil
}

// MarkPaid marks an invoice Paid and accumulates the collected amount.
// Reports whether a row was affected.
func (r *FeeRepository) MarkPaid(ctx context.Context, code string, amount float64) (bool, error) {
	query := `
		UPDATE fees
		SET payment_status = $1, amount_paid = amount_paid + $2, paid_at = $3
		WHERE invoice_code = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, models.PaymentPaid, amount, time.Now(), code)
	if err != nil {
		return false, fmt.Errorf("error collecting payment: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// ListByStudent retrieves a student's invoice history, most recent first.
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.FeeInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM fees WHERE student_id = $1 ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.FeeInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

// ListAll retrieves every invoice joined with the student's current name.
func (r *FeeRepository) ListAll(ctx context.Context) ([]*models.InvoiceRow, error) {
	query := `
		SELECT f.id, f.invoice_code, f.student_id, f.month, f.amount_due,
			f.amount_paid, f.payment_status, f.paid_at, s.name
		FROM fees f
		JOIN students s ON s.enrollment_id = f.student_id
		ORDER BY f.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.InvoiceRow
	for rows.Next() {
		var row models.InvoiceRow
		if err := rows.Scan(
			&row.ID,
			&row.InvoiceCode,
			&row.StudentID,
			&row.Month,
			&row.AmountDue,
			&row.AmountPaid,
			&row.Status,
			&row.PaidAt,
			&row.StudentName,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// CountAll returns the total number of invoices.
func (r *FeeRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM fees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting invoices: %w", err)
	}
	return count, nil
}

// CountPending returns the number of Pending invoices.
func (r *FeeRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM fees WHERE payment_status = $1`, models.PaymentPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending invoices: %w", err)
	}
	return count, nil
}

// OutstandingBalance returns the total amount still owed by a student.
func (r *FeeRepository) OutstandingBalance(ctx context.Context, studentID int64) (float64, error) {
	var balance float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_due - amount_paid), 0)
		FROM fees
		WHERE student_id = $1 AND payment_status = $2`,
		studentID, models.PaymentPending).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("error computing balance: %w", err)
	}

	return balance, nil
}

// MonthlyAmount returns the fee-structure amount for a class, zero when the
// class has no fee configured.
func (r *FeeRepository) MonthlyAmount(ctx context.Context, className string) (float64, error) {
	var amount float64
	err := r.db.QueryRow(ctx,
		`SELECT monthly_amount FROM fee_structure WHERE class_name = $1`, className).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error retrieving fee structure: %w", err)
	}

	return amount, nil
}

// SetMonthlyAmount upserts the fee-structure amount for a class.
func (r *FeeRepository) SetMonthlyAmount(ctx context.Context, className string, amount float64) error {
	query := `
		INSERT INTO fee_structure (class_name, monthly_amount)
		VALUES ($1, $2)
		ON CONFLICT (class_name) DO UPDATE SET monthly_amount = EXCLUDED.monthly_amount
	`

	if _, err := r.db.Exec(ctx, query, className, amount); err != nil {
		return fmt.Errorf("error updating fee structure: %w", err)
	}

	return nil
}

// CreateMissingForMonth creates the month's Pending invoice for every
// Active student that does not have one yet. Amounts come from the class
// fee structure; classes without a structure row bill zero. Returns the
// number of invoices created; the (student, month) uniqueness makes reruns
// safe.
func (r *FeeRepository) CreateMissingForMonth(ctx context.Context, month string, codeFor func(int64) string) (int, error) {
	query := `
		SELECT s.enrollment_id, COALESCE(fs.monthly_amount, 0)
		FROM students s
		LEFT JOIN fee_structure fs ON fs.class_name = s.class_name
		WHERE s.status = $1
		  AND NOT EXISTS (
			SELECT 1 FROM fees f WHERE f.student_id = s.enrollment_id AND f.month = $2
		  )
	`

	rows, err := r.db.Query(ctx, query, models.StatusActive, month)
	if err != nil {
		return 0, err
	}

	type due struct {
		studentID int64
		amount    float64
	}
	var dues []due
	for rows.Next() {
		var d due
		if err := rows.Scan(&d.studentID, &d.amount); err != nil {
			rows.Close()
			return 0, err
		}
		dues = append(dues, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	created := 0
	for _, d := range dues {
		_, err := r.db.Exec(ctx, `
			INSERT INTO fees (invoice_code, student_id, month, amount_due, amount_paid, payment_status)
			VALUES ($1, $2, $3, $4, 0, $5)
			ON CONFLICT (student_id, month) DO NOTHING`,
			codeFor(d.studentID), d.studentID, month, d.amount, models.PaymentPending)
		if err != nil {
			return created, fmt.Errorf("error creating invoice: %w", err)
		}
		created++
	}

	return created, nil
}
