package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorageFailure = errors.New("storage failure")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrInvalidStatus   = errors.New("invalid student status")
	// ErrRollTaken signals the roll-number uniqueness constraint among
	// Active students of a class/section.
	ErrRollTaken = errors.New("roll number already taken in this class")
)

// Class errors
var (
	ErrClassNotFound = errors.New("class not found")
	// ErrInvalidClass rejects an enrollment against a nonexistent class.
	ErrInvalidClass        = errors.New("class does not exist")
	ErrClassAlreadyExists  = errors.New("class with this name already exists")
	ErrClassHasStudents    = errors.New("class still has active students and cannot be deleted")
	ErrInvalidCapacity     = errors.New("capacity must be a positive number")
	ErrClassNameRequired   = errors.New("class name cannot be empty")
	ErrSectionRollConflict = errors.New("roll numbers conflict within the section")
)

// Fee errors
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidAmount   = errors.New("amount must not be negative")
)

// Attendance errors
var (
	ErrDuplicateAttendance      = errors.New("attendance already recorded for this student and date")
	ErrInvalidAttendanceStatus  = errors.New("invalid attendance status")
	ErrEmptyAttendanceBatch     = errors.New("attendance batch is empty")
	ErrAttendanceStudentMissing = errors.New("attendance references an unknown student")
)

// Exam errors
var (
	ErrExamNotFound = errors.New("exam not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
