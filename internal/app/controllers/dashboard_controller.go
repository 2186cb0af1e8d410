package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// DashboardController serves the dashboard summary endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats retrieves the headline stat cards
// @Summary Get dashboard stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]services.StatCard} "Stats retrieved successfully"
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.dashboardService.Stats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// Activity retrieves the recent activity feed
// @Summary Get recent activity
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum entries, defaults to 5"
// @Success 200 {object} dto.APIResponse{data=[]models.Activity} "Feed retrieved successfully"
// @Router /dashboard/activity [get]
func (c *DashboardController) Activity(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	feed, err := c.dashboardService.RecentActivity(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(feed))
}
