package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	EnrollmentID int64         `json:"enrollmentId" db:"enrollment_id" example:"1"` // Unique identifier, stable for the life of the record
	Name         string        `json:"name" db:"name" example:"Maaz Ali"`
	FatherName   string        `json:"fatherName" db:"father_name" example:"Ali Khan"`
	ClassName    string        `json:"className" db:"class_name" example:"BSCS"` // Free-text reference to classes.class_name
	Section      string        `json:"section,omitempty" db:"section"`           // Optional; empty means the class has no sections
	RollNo       int           `json:"rollNo" db:"roll_no" example:"3"`          // Sequential position among Active classmates
	Gender       Gender        `json:"gender" db:"gender" example:"Male"`
	Status       StudentStatus `json:"status" db:"status" example:"Active"`
	JoiningDate  time.Time     `json:"joiningDate" db:"joining_date"`
	Shift        string        `json:"shift,omitempty" db:"shift" example:"Morning"`
	Region       string        `json:"region,omitempty" db:"region"`
}

// StudentProfile carries the editable profile fields of a student. A
// profile edit overwrites exactly these fields and nothing else.
type StudentProfile struct {
	Name      string `json:"name"`
	RollNo    int    `json:"rollNo"`
	ClassName string `json:"className"`
	Section   string `json:"section"`
	Shift     string `json:"shift"`
	Region    string `json:"region"`
}
