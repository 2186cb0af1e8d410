package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// StudentController handles student roster operations
type StudentController struct {
	rosterService *services.RosterService
	feeService    *services.FeeService
	attendance    *services.AttendanceService
}

// NewStudentController creates a new StudentController
func NewStudentController(rosterService *services.RosterService, feeService *services.FeeService, attendance *services.AttendanceService) *StudentController {
	return &StudentController{
		rosterService: rosterService,
		feeService:    feeService,
		attendance:    attendance,
	}
}

func studentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment ID")
		errorDetail = errorDetail.WithDetails("Enrollment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Enroll handles new student enrollment
// @Summary Enroll a new student
// @Description Registers an Active student and opens their first fee invoice
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.EnrollStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Roll number already assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.rosterService.Enroll(ctx, services.EnrollInput{
		Name:       req.Name,
		FatherName: req.FatherName,
		ClassName:  req.ClassName,
		Section:    req.Section,
		RollNo:     req.RollNo,
		Gender:     models.Gender(req.Gender),
		Shift:      req.Shift,
		Region:     req.Region,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// List retrieves students
// @Summary List students
// @Description Lists all students, or one class's Active roster in roll order
// @Tags students
// @Produce json
// @Param class query string false "Filter by class name"
// @Param section query string false "Section within the class"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.rosterService.ListStudents(ctx, ctx.Query("class"), ctx.Query("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// Get retrieves one student by enrollment ID
// @Summary Get student by enrollment ID
// @Tags students
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	student, err := c.rosterService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Update overwrites a student's editable profile fields
// @Summary Update student profile
// @Description Overwrites the editable fields; moving class or section reindexes both rosters
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateStudentRequest true "Profile fields"
// @Success 200 {object} dto.SuccessResponse "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Roll number already assigned"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.rosterService.UpdateProfile(ctx, id, models.StudentProfile{
		Name:      req.Name,
		RollNo:    req.RollNo,
		ClassName: req.ClassName,
		Section:   req.Section,
		Shift:     req.Shift,
		Region:    req.Region,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !updated {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Profile updated"})
}

// ChangeStatus applies a plain status transition
// @Summary Change student status
// @Description Applies a status change without touching roll numbers
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.ChangeStatusRequest true "New status"
// @Success 200 {object} dto.SuccessResponse "Status changed"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/status [patch]
func (c *StudentController) ChangeStatus(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.rosterService.ChangeStatus(ctx, id, models.StudentStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !updated {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Status changed"})
}

// Leave retires a student and compacts the class
// @Summary Mark a student as left
// @Description Sets status Left, clears the roll number and renumbers the class 1..N
// @Tags students
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.SuccessResponse "Student marked as left"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/leave [post]
func (c *StudentController) Leave(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	if err := c.rosterService.StudentLeaves(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student marked as left"})
}

// Fail moves a failed student to the end of the class order
// @Summary Mark a student as failed
// @Description Moves the student to the last roll position; status stays Active
// @Tags students
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.SuccessResponse "Student moved to last position"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/fail [post]
func (c *StudentController) Fail(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	if err := c.rosterService.StudentFails(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student moved to last position"})
}

// FeeStatus reports a student's fee position
// @Summary Get a student's fee status
// @Tags students
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.FeeStatusReport} "Fee status retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/fees [get]
func (c *StudentController) FeeStatus(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	report, err := c.feeService.FeeStatus(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// Balance reports a student's outstanding total
// @Summary Get a student's outstanding balance
// @Tags students
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=dto.BalanceResponse} "Balance retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/balance [get]
func (c *StudentController) Balance(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	balance, err := c.feeService.OutstandingBalance(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.BalanceResponse{StudentID: id, Balance: balance}))
}

// Attendance returns a student's attendance history
// @Summary Get a student's attendance history
// @Tags students
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "History retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/attendance [get]
func (c *StudentController) Attendance(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	history, err := c.attendance.History(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}
