package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Controllers call
// this for every service error so status codes stay consistent across the
// API surface.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrClassNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Class not found")))
	case errors.Is(err, apperrors.ErrInvoiceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvoiceNotFound, "Invoice not found")))
	case errors.Is(err, apperrors.ErrExamNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Exam not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrRollTaken):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeRollTaken, "Roll number already assigned in this class").WithField("rollNo")))
	case errors.Is(err, apperrors.ErrClassAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Class already exists")))
	case errors.Is(err, apperrors.ErrClassHasStudents):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Class still has active students")))
	case errors.Is(err, apperrors.ErrDuplicateAttendance):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Attendance already recorded for this date")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Resource conflict")))
	case errors.Is(err, apperrors.ErrInvalidClass):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidClass, "Class does not exist").WithField("className")))
	case errors.Is(err, apperrors.ErrInvalidGender):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid gender").WithField("gender")))
	case errors.Is(err, apperrors.ErrInvalidStatus):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student status").WithField("status")))
	case errors.Is(err, apperrors.ErrInvalidAmount):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidAmount, "Amount must not be negative").WithField("amount")))
	case errors.Is(err, apperrors.ErrInvalidCapacity):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Capacity must be a positive number").WithField("capacity")))
	case errors.Is(err, apperrors.ErrClassNameRequired):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Class name is required").WithField("name")))
	case errors.Is(err, apperrors.ErrInvalidAttendanceStatus):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance status").WithField("status")))
	case errors.Is(err, apperrors.ErrEmptyAttendanceBatch):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Attendance batch is empty")))
	case errors.Is(err, apperrors.ErrAttendanceStudentMissing):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Batch references a student that does not exist")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())))
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
