package models

// StudentStatus is the academic status of a student record. Records are
// never deleted in the normal flows; a status change substitutes for
// deletion.
type StudentStatus string

const (
	StatusActive    StudentStatus = "Active"
	StatusLeft      StudentStatus = "Left"
	StatusGraduated StudentStatus = "Graduated"
	StatusDropout   StudentStatus = "Dropout"
	// StatusFailed is reserved. Failing a student only moves them to the
	// end of the class order; their status stays Active.
	StatusFailed StudentStatus = "Failed"
)

// Valid reports whether the status is one of the closed set.
func (s StudentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusLeft, StatusGraduated, StatusDropout, StatusFailed:
		return true
	}
	return false
}

// Gender values accepted on student records.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PaymentStatus is the state of a fee invoice.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (p PaymentStatus) Valid() bool {
	return p == PaymentPending || p == PaymentPaid
}

// AttendanceStatus is the per-day attendance state of a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
	AttendanceLate    AttendanceStatus = "Late"
)

func (a AttendanceStatus) Valid() bool {
	switch a {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave, AttendanceLate:
		return true
	}
	return false
}

// Roll number sentinels. Roll numbers are unique among Active students of a
// class/section; RollLeft marks a retired record and RollSentinel parks a
// failed student after all active peers until the next reindex.
const (
	RollLeft     = 0
	RollSentinel = 9999
)
