package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/db"
)

// Services in this package own the domain rules; repositories stay dumb
// table access. Each service takes the narrow store interfaces below plus,
// where it mutates more than one row, a TxRunner, so every multi-statement
// flow commits or rolls back as a unit and tests can substitute in-memory
// stores.

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// StudentStore is the student-table access the services need.
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	ListActiveByClass(ctx context.Context, className, section string) ([]*models.Student, error)
	ListActiveByClassTx(ctx context.Context, tx pgx.Tx, className, section string) ([]*models.Student, error)
	CountActiveByClass(ctx context.Context, className string) (int, error)
	CountActive(ctx context.Context) (int, error)
	RollTaken(ctx context.Context, className, section string, rollNo int) (bool, error)
	CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error
	SetStatus(ctx context.Context, id int64, status models.StudentStatus) (bool, error)
	SetStatusRollTx(ctx context.Context, tx pgx.Tx, id int64, status models.StudentStatus, rollNo int) error
	SetRollTx(ctx context.Context, tx pgx.Tx, id int64, rollNo int) error
	UpdateProfileTx(ctx context.Context, tx pgx.Tx, id int64, profile models.StudentProfile) (bool, error)
}

// ClassStore is the class-table access the services need.
type ClassStore interface {
	Create(ctx context.Context, class *models.Class) error
	GetByName(ctx context.Context, name string) (*models.Class, error)
	Exists(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]*models.ClassOccupancy, error)
	Names(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, code string) error
}

// FeeStore is the invoice and fee-structure access the services need.
type FeeStore interface {
	CreateInvoiceTx(ctx context.Context, tx pgx.Tx, inv *models.FeeInvoice) error
	GetByCode(ctx context.Context, code string) (*models.FeeInvoice, error)
	MarkPaid(ctx context.Context, code string, amount float64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.FeeInvoice, error)
	ListAll(ctx context.Context) ([]*models.InvoiceRow, error)
	CountAll(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)
	OutstandingBalance(ctx context.Context, studentID int64) (float64, error)
	MonthlyAmount(ctx context.Context, className string) (float64, error)
	SetMonthlyAmount(ctx context.Context, className string, amount float64) error
	CreateMissingForMonth(ctx context.Context, month string, codeFor func(int64) string) (int, error)
}

// AttendanceStore is the attendance-table access the services need.
type AttendanceStore interface {
	InsertBatchTx(ctx context.Context, tx pgx.Tx, records []*models.AttendanceRecord) error
	HistoryByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error)
}

// ExamStore is the exam/marks access the services need.
type ExamStore interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetAll(ctx context.Context) ([]*models.Exam, error)
	Delete(ctx context.Context, id int64) error
	UpsertMark(ctx context.Context, mark *models.Mark) error
}

// ActivityStore is the activity-feed access the services need.
type ActivityStore interface {
	Insert(ctx context.Context, activity *models.Activity) error
	Recent(ctx context.Context, limit int) ([]*models.Activity, error)
}

// SettingsStore is the settings access the services need.
type SettingsStore interface {
	All(ctx context.Context) (map[string]string, error)
	UpsertTx(ctx context.Context, tx pgx.Tx, key, value string) error
}

// newInvoiceCode generates a collision-free invoice code. The legacy
// id+seconds scheme could collide under rapid successive enrollments.
func newInvoiceCode() string {
	return "INV-" + uuid.NewString()
}

// newClassCode generates the externally visible short class token.
func newClassCode() string {
	return "CLS-" + uuid.NewString()[:8]
}
