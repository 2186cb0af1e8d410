package models

import "time"

// FeeInvoice defines one monthly fee obligation based on the 'fees' table.
// Invoices are keyed by student id; the student name is resolved at read
// time so name edits never orphan payment history.
type FeeInvoice struct {
	ID          int64         `json:"id" db:"id"`
	InvoiceCode string        `json:"invoiceCode" db:"invoice_code" example:"INV-7ba4c1e9"`
	StudentID   int64         `json:"studentId" db:"student_id"`
	Month       string        `json:"month" db:"month" example:"August 2026"`
	AmountDue   float64       `json:"amountDue" db:"amount_due"`
	AmountPaid  float64       `json:"amountPaid" db:"amount_paid"`
	Status      PaymentStatus `json:"status" db:"payment_status"`
	PaidAt      *time.Time    `json:"paidAt,omitempty" db:"paid_at"`
}

// InvoiceRow is an invoice joined with the student's current name, the
// shape the fee records table displays.
type InvoiceRow struct {
	FeeInvoice
	StudentName string `json:"studentName" db:"student_name"`
}

// FeeStatusReport summarizes a student's fee position: full invoice
// history plus the class fee amount and paid/remaining totals.
type FeeStatusReport struct {
	History   []*FeeInvoice `json:"history"`
	ClassFee  float64       `json:"classFee"`
	TotalPaid float64       `json:"totalPaid"`
	Remaining float64       `json:"remaining"`
}
