package dto

// AttendanceEntryRequest is one student's state inside a batch save
type AttendanceEntryRequest struct {
	StudentID int64  `json:"studentId" binding:"required" example:"1"`
	Status    string `json:"status" binding:"required" example:"Present"`
}

// SaveAttendanceRequest represents one class roster's attendance for a date
type SaveAttendanceRequest struct {
	ClassName string                   `json:"className" binding:"required" example:"BSCS"`
	Date      string                   `json:"date" binding:"required" example:"2026-08-28"` // YYYY-MM-DD
	Entries   []AttendanceEntryRequest `json:"entries" binding:"required,dive"`
}
