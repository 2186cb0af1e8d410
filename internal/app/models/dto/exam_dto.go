package dto

// ScheduleExamRequest represents a request to schedule an examination
type ScheduleExamRequest struct {
	Name      string `json:"name" binding:"required" example:"Midterm"`
	ClassName string `json:"className" binding:"required" example:"BSCS"`
	Date      string `json:"date" binding:"required" example:"2026-09-15"` // YYYY-MM-DD
	RoomNo    string `json:"roomNo" example:"R-101"`
}

// RecordMarkRequest represents one subject result for one student
type RecordMarkRequest struct {
	StudentID     int64   `json:"studentId" binding:"required" example:"1"`
	Subject       string  `json:"subject" binding:"required" example:"Mathematics"`
	MarksObtained float64 `json:"marksObtained" binding:"min=0" example:"87"`
	TotalMarks    float64 `json:"totalMarks" binding:"required,min=1" example:"100"`
}
