package dto

// CollectPaymentRequest represents a request to collect a fee payment
type CollectPaymentRequest struct {
	InvoiceCode string  `json:"invoiceCode" binding:"required" example:"INV-7ba4c1e9"`
	Amount      float64 `json:"amount" binding:"min=0" example:"5000"`
}

// GenerateInvoicesRequest represents a request to open the month's invoices
type GenerateInvoicesRequest struct {
	Month string `json:"month" binding:"required" example:"August 2026"`
}

// GenerateInvoicesResponse reports how many invoices a generation run created
type GenerateInvoicesResponse struct {
	Month   string `json:"month" example:"August 2026"`
	Created int    `json:"created" example:"42"`
}

// SetClassFeeRequest represents a request to set a class's monthly fee
type SetClassFeeRequest struct {
	ClassName string  `json:"className" binding:"required" example:"BSCS"`
	Amount    float64 `json:"amount" binding:"min=0" example:"5000"`
}

// BalanceResponse reports a student's total outstanding amount
type BalanceResponse struct {
	StudentID int64   `json:"studentId" example:"1"`
	Balance   float64 `json:"balance" example:"10000"`
}
