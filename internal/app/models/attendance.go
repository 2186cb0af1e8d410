package models

import "time"

// AttendanceRecord defines one student's attendance for one date, based on
// the 'attendance' table. Records are immutable once saved; (student, date)
// is unique.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status" example:"Present"`
	ClassName string           `json:"className,omitempty" db:"class_name"`
}
