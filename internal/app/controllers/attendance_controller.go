package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// AttendanceController handles attendance capture
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Save stores one class roster's attendance for a date
// @Summary Save an attendance batch
// @Description Stores the whole batch atomically; a day already marked for any student fails the batch
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.SaveAttendanceRequest true "Attendance batch"
// @Success 201 {object} dto.SuccessResponse "Attendance saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Attendance already recorded for this date"
// @Router /attendance [post]
func (c *AttendanceController) Save(ctx *gin.Context) {
	var req dto.SaveAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Date must be YYYY-MM-DD").WithField("date")))
		return
	}

	entries := make([]services.AttendanceEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, services.AttendanceEntry{
			StudentID: e.StudentID,
			Status:    models.AttendanceStatus(e.Status),
		})
	}

	if err := c.attendanceService.SaveBatch(ctx, req.ClassName, date, entries); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Attendance saved"})
}
