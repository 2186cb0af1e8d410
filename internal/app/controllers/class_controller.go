package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// ClassController handles class management operations
type ClassController struct {
	classService  *services.ClassService
	rosterService *services.RosterService
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService, rosterService *services.RosterService) *ClassController {
	return &ClassController{
		classService:  classService,
		rosterService: rosterService,
	}
}

// Create handles class creation
// @Summary Create a new class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Class already exists"
// @Router /classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.CreateClass(ctx, req.Name, req.Capacity, req.Room, req.Shift)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(class))
}

// List retrieves all classes with occupancy
// @Summary List classes
// @Description Lists every class with its live Active head count and near-full flag
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ClassOccupancy} "Classes retrieved successfully"
// @Router /classes [get]
func (c *ClassController) List(ctx *gin.Context) {
	classes, err := c.classService.ListClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(classes))
}

// Names retrieves class names for dropdowns
// @Summary List class names
// @Tags classes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Names retrieved successfully"
// @Router /classes/names [get]
func (c *ClassController) Names(ctx *gin.Context) {
	names, err := c.classService.ClassNames(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(names))
}

// Capacity reports one class's occupancy display string
// @Summary Get class capacity stats
// @Description Returns the "current/capacity" display string for a class
// @Tags classes
// @Produce json
// @Param class query string true "Class name"
// @Success 200 {object} dto.APIResponse{data=string} "Stats retrieved successfully"
// @Router /classes/capacity [get]
func (c *ClassController) Capacity(ctx *gin.Context) {
	className := ctx.Query("class")
	if className == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Query parameter 'class' is required").WithField("class")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.rosterService.CapacityStats(ctx, className)))
}

// Delete removes a class by code
// @Summary Delete a class
// @Description Refused while Active students still reference the class
// @Tags classes
// @Produce json
// @Param code path string true "Class code"
// @Success 200 {object} dto.SuccessResponse "Class deleted"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 409 {object} dto.ErrorResponse "Class still has active students"
// @Router /classes/{code} [delete]
func (c *ClassController) Delete(ctx *gin.Context) {
	if err := c.classService.DeleteClass(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Class deleted"})
}
