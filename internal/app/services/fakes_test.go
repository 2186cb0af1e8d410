package services

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/db"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// fakeState is shared in-memory backing for the per-store fakes below, so
// the domain rules can be exercised without a database. The per-interface
// views (fakeStudents, fakeClasses, ...) all point at one fakeState.
type fakeState struct {
	students   map[int64]*models.Student
	nextID     int64
	classes    map[string]*models.Class
	invoices   map[string]*models.FeeInvoice
	invoiceSeq int64
	feeAmounts map[string]float64
	activities []*models.Activity

	failInvoiceInsert bool
}

func newFakeState() *fakeState {
	return &fakeState{
		students:   make(map[int64]*models.Student),
		classes:    make(map[string]*models.Class),
		invoices:   make(map[string]*models.FeeInvoice),
		feeAmounts: make(map[string]float64),
	}
}

func (f *fakeState) addClass(name, capacity string) {
	f.classes[name] = &models.Class{Code: "CLS-" + name, Name: name, Capacity: capacity}
}

func (f *fakeState) addStudent(name, class, section string, roll int) *models.Student {
	f.nextID++
	s := &models.Student{
		EnrollmentID: f.nextID,
		Name:         name,
		ClassName:    class,
		Section:      section,
		RollNo:       roll,
		Gender:       models.GenderMale,
		Status:       models.StatusActive,
	}
	f.students[s.EnrollmentID] = s
	return s
}

// fakeTxRunner mimics transactional semantics by snapshotting the state
// before the function runs and restoring it when the function fails.
type fakeTxRunner struct {
	state *fakeState
}

func (r *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	snapshot := r.state.snapshot()
	if err := fn(ctx, nil); err != nil {
		r.state.restore(snapshot)
		return err
	}
	return nil
}

type stateSnapshot struct {
	students map[int64]*models.Student
	invoices map[string]*models.FeeInvoice
	nextID   int64
	seq      int64
}

func (f *fakeState) snapshot() stateSnapshot {
	snap := stateSnapshot{
		students: make(map[int64]*models.Student, len(f.students)),
		invoices: make(map[string]*models.FeeInvoice, len(f.invoices)),
		nextID:   f.nextID,
		seq:      f.invoiceSeq,
	}
	for id, s := range f.students {
		copied := *s
		snap.students[id] = &copied
	}
	for code, inv := range f.invoices {
		copied := *inv
		snap.invoices[code] = &copied
	}
	return snap
}

func (f *fakeState) restore(snap stateSnapshot) {
	f.students = snap.students
	f.invoices = snap.invoices
	f.nextID = snap.nextID
	f.invoiceSeq = snap.seq
}

// fakeStudents implements StudentStore.
type fakeStudents struct{ *fakeState }

func (f fakeStudents) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f fakeStudents) GetAll(ctx context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnrollmentID < out[j].EnrollmentID })
	return out, nil
}

func (f fakeStudents) ListActiveByClass(ctx context.Context, className, section string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.ClassName == className && s.Section == section && s.Status == models.StatusActive {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RollNo != out[j].RollNo {
			return out[i].RollNo < out[j].RollNo
		}
		return out[i].EnrollmentID < out[j].EnrollmentID
	})
	return out, nil
}

func (f fakeStudents) ListActiveByClassTx(ctx context.Context, tx pgx.Tx, className, section string) ([]*models.Student, error) {
	return f.ListActiveByClass(ctx, className, section)
}

func (f fakeStudents) CountActiveByClass(ctx context.Context, className string) (int, error) {
	count := 0
	for _, s := range f.students {
		if s.ClassName == className && s.Status == models.StatusActive {
			count++
		}
	}
	return count, nil
}

func (f fakeStudents) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, s := range f.students {
		if s.Status == models.StatusActive {
			count++
		}
	}
	return count, nil
}

func (f fakeStudents) RollTaken(ctx context.Context, className, section string, rollNo int) (bool, error) {
	for _, s := range f.students {
		if s.ClassName == className && s.Section == section && s.RollNo == rollNo && s.Status == models.StatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeStudents) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	f.nextID++
	student.EnrollmentID = f.nextID
	copied := *student
	f.students[student.EnrollmentID] = &copied
	return nil
}

func (f fakeStudents) SetStatus(ctx context.Context, id int64, status models.StudentStatus) (bool, error) {
	s, ok := f.students[id]
	if !ok {
		return false, nil
	}
	s.Status = status
	return true, nil
}

func (f fakeStudents) SetStatusRollTx(ctx context.Context, tx pgx.Tx, id int64, status models.StudentStatus, rollNo int) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.Status = status
	s.RollNo = rollNo
	return nil
}

func (f fakeStudents) SetRollTx(ctx context.Context, tx pgx.Tx, id int64, rollNo int) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.RollNo = rollNo
	return nil
}

func (f fakeStudents) UpdateProfileTx(ctx context.Context, tx pgx.Tx, id int64, profile models.StudentProfile) (bool, error) {
	s, ok := f.students[id]
	if !ok {
		return false, nil
	}
	s.Name = profile.Name
	s.RollNo = profile.RollNo
	s.ClassName = profile.ClassName
	s.Section = profile.Section
	s.Shift = profile.Shift
	s.Region = profile.Region
	return true, nil
}

// fakeClasses implements ClassStore.
type fakeClasses struct{ *fakeState }

func (f fakeClasses) Create(ctx context.Context, class *models.Class) error {
	if _, ok := f.classes[class.Name]; ok {
		return apperrors.ErrClassAlreadyExists
	}
	copied := *class
	f.classes[class.Name] = &copied
	return nil
}

func (f fakeClasses) GetByName(ctx context.Context, name string) (*models.Class, error) {
	c, ok := f.classes[name]
	if !ok {
		return nil, apperrors.ErrClassNotFound
	}
	copied := *c
	return &copied, nil
}

func (f fakeClasses) Exists(ctx context.Context, name string) (bool, error) {
	_, ok := f.classes[name]
	return ok, nil
}

func (f fakeClasses) GetAll(ctx context.Context) ([]*models.ClassOccupancy, error) {
	var out []*models.ClassOccupancy
	for _, c := range f.classes {
		count, _ := fakeStudents{f.fakeState}.CountActiveByClass(ctx, c.Name)
		out = append(out, &models.ClassOccupancy{Class: *c, ActiveStudents: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeClasses) Names(ctx context.Context) ([]string, error) {
	var names []string
	for name := range f.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f fakeClasses) Delete(ctx context.Context, code string) error {
	for name, c := range f.classes {
		if c.Code != code {
			continue
		}
		for _, s := range f.students {
			if s.ClassName == name && s.Status == models.StatusActive {
				return apperrors.ErrClassHasStudents
			}
		}
		delete(f.classes, name)
		return nil
	}
	return apperrors.ErrClassNotFound
}

// fakeFees implements FeeStore.
type fakeFees struct{ *fakeState }

func (f fakeFees) CreateInvoiceTx(ctx context.Context, tx pgx.Tx, inv *models.FeeInvoice) error {
	if f.failInvoiceInsert {
		return errors.New("forced invoice failure")
	}
	f.invoiceSeq++
	inv.ID = f.invoiceSeq
	copied := *inv
	f.invoices[inv.InvoiceCode] = &copied
	return nil
}

func (f fakeFees) GetByCode(ctx context.Context, code string) (*models.FeeInvoice, error) {
	inv, ok := f.invoices[code]
	if !ok {
		return nil, apperrors.ErrInvoiceNotFound
	}
	copied := *inv
	return &copied, nil
}

func (f fakeFees) MarkPaid(ctx context.Context, code string, amount float64) (bool, error) {
	inv, ok := f.invoices[code]
	if !ok {
		return false, nil
	}
	inv.Status = models.PaymentPaid
	inv.AmountPaid += amount
	return true, nil
}

func (f fakeFees) ListByStudent(ctx context.Context, studentID int64) ([]*models.FeeInvoice, error) {
	var out []*models.FeeInvoice
	for _, inv := range f.invoices {
		if inv.StudentID == studentID {
			copied := *inv
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f fakeFees) ListAll(ctx context.Context) ([]*models.InvoiceRow, error) {
	var out []*models.InvoiceRow
	for _, inv := range f.invoices {
		row := &models.InvoiceRow{FeeInvoice: *inv}
		if s, ok := f.students[inv.StudentID]; ok {
			row.StudentName = s.Name
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f fakeFees) CountAll(ctx context.Context) (int, error) {
	return len(f.invoices), nil
}

func (f fakeFees) CountPending(ctx context.Context) (int, error) {
	count := 0
	for _, inv := range f.invoices {
		if inv.Status == models.PaymentPending {
			count++
		}
	}
	return count, nil
}

func (f fakeFees) OutstandingBalance(ctx context.Context, studentID int64) (float64, error) {
	var balance float64
	for _, inv := range f.invoices {
		if inv.StudentID == studentID && inv.Status == models.PaymentPending {
			balance += inv.AmountDue - inv.AmountPaid
		}
	}
	return balance, nil
}

func (f fakeFees) MonthlyAmount(ctx context.Context, className string) (float64, error) {
	return f.feeAmounts[className], nil
}

func (f fakeFees) SetMonthlyAmount(ctx context.Context, className string, amount float64) error {
	f.feeAmounts[className] = amount
	return nil
}

func (f fakeFees) CreateMissingForMonth(ctx context.Context, month string, codeFor func(int64) string) (int, error) {
	created := 0
	for _, s := range f.students {
		if s.Status != models.StatusActive {
			continue
		}
		has := false
		for _, inv := range f.invoices {
			if inv.StudentID == s.EnrollmentID && inv.Month == month {
				has = true
				break
			}
		}
		if has {
			continue
		}
		f.invoiceSeq++
		code := codeFor(s.EnrollmentID)
		f.invoices[code] = &models.FeeInvoice{
			ID:          f.invoiceSeq,
			InvoiceCode: code,
			StudentID:   s.EnrollmentID,
			Month:       month,
			AmountDue:   f.feeAmounts[s.ClassName],
			Status:      models.PaymentPending,
		}
		created++
	}
	return created, nil
}

// fakeActivityLog implements ActivityStore.
type fakeActivityLog struct{ *fakeState }

func (f fakeActivityLog) Insert(ctx context.Context, activity *models.Activity) error {
	copied := *activity
	copied.ID = int64(len(f.activities) + 1)
	f.fakeState.activities = append(f.fakeState.activities, &copied)
	return nil
}

func (f fakeActivityLog) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(f.activities) - 1; i >= 0 && len(out) < limit; i-- {
		copied := *f.activities[i]
		out = append(out, &copied)
	}
	return out, nil
}
