package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// ExamController handles exam scheduling and marks entry
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// Schedule registers a new examination
// @Summary Schedule an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.ScheduleExamRequest true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /exams [post]
func (c *ExamController) Schedule(ctx *gin.Context) {
	var req dto.ScheduleExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
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

	exam := &models.Exam{
		Name:      req.Name,
		ClassName: req.ClassName,
		Date:      date,
		RoomNo:    req.RoomNo,
	}
	if err := c.examService.Schedule(ctx, exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// List retrieves all scheduled exams
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Exam} "Exams retrieved successfully"
// @Router /exams [get]
func (c *ExamController) List(ctx *gin.Context) {
	exams, err := c.examService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}

// Delete removes an exam
// @Summary Delete an exam
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.SuccessResponse "Exam deleted"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam ID")))
		return
	}

	if err := c.examService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Exam deleted"})
}

// RecordMarks stores one subject result for one student
// @Summary Record marks
// @Description Re-recording the same (student, exam, subject) overwrites the stored result
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param request body dto.RecordMarkRequest true "Mark information"
// @Success 200 {object} dto.SuccessResponse "Marks recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam or student not found"
// @Router /exams/{id}/marks [post]
func (c *ExamController) RecordMarks(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam ID")))
		return
	}

	var req dto.RecordMarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mark data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mark := &models.Mark{
		StudentID:     req.StudentID,
		ExamID:        id,
		Subject:       req.Subject,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
	}
	if err := c.examService.RecordMarks(ctx, mark); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Marks recorded"})
}
