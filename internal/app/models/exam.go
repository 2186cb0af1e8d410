package models

import "time"

// Exam defines a scheduled examination based on the 'exams' table
type Exam struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"exam_name" example:"Midterm"`
	ClassName string    `json:"className" db:"class_name" example:"BSCS"`
	Date      time.Time `json:"date" db:"exam_date"`
	RoomNo    string    `json:"roomNo,omitempty" db:"room_no" example:"R-101"`
}

// Mark defines a student's result in one subject of one exam, based on the
// 'marks' table. Re-recording the same (student, exam, subject) overwrites
// the obtained marks.
type Mark struct {
	ID            int64   `json:"id" db:"id"`
	StudentID     int64   `json:"studentId" db:"student_id"`
	ExamID        int64   `json:"examId" db:"exam_id"`
	Subject       string  `json:"subject" db:"subject"`
	MarksObtained float64 `json:"marksObtained" db:"marks_obtained"`
	TotalMarks    float64 `json:"totalMarks" db:"total_marks"`
}
