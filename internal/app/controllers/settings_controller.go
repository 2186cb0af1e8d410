package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// SettingsController handles institution settings
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// Get retrieves all settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]string} "Settings retrieved successfully"
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.settingsService.All(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings))
}

// Update upserts settings keys
// @Summary Update settings
// @Description Upserts every provided key in one transaction
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings to upsert"
// @Success 200 {object} dto.SuccessResponse "Settings updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settings data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.settingsService.Update(ctx, req.Settings); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Settings updated"})
}
