package models

// Setting is one key/value pair of the 'school_settings' table.
type Setting struct {
	Key   string `json:"key" db:"key" example:"institution_name"`
	Value string `json:"value" db:"value" example:"City College"`
}

// FeeStructure defines the monthly fee amount for a class, based on the
// 'fee_structure' table.
type FeeStructure struct {
	ClassName     string  `json:"className" db:"class_name" example:"BSCS"`
	MonthlyAmount float64 `json:"monthlyAmount" db:"monthly_amount" example:"5000"`
}
