package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/models/dto"
	"github.com/maazali/collegia/internal/app/services"
	"github.com/maazali/collegia/internal/middleware"
)

// FeeController handles fee ledger operations
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// List retrieves all invoices with student names resolved
// @Summary List invoices
// @Tags fees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InvoiceRow} "Invoices retrieved successfully"
// @Router /fees [get]
func (c *FeeController) List(ctx *gin.Context) {
	invoices, err := c.feeService.ListInvoices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(invoices))
}

// Collect marks an invoice as paid
// @Summary Collect a fee payment
// @Description Marks the invoice Paid; collecting an already-Paid invoice changes nothing
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.CollectPaymentRequest true "Payment information"
// @Success 200 {object} dto.SuccessResponse "Payment collected"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Router /fees/collect [post]
func (c *FeeController) Collect(ctx *gin.Context) {
	var req dto.CollectPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.feeService.CollectPayment(ctx, req.InvoiceCode, req.Amount); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Payment collected"})
}

// Generate opens the month's missing invoices
// @Summary Generate monthly invoices
// @Description Opens a Pending invoice for every Active student lacking one for the month
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoicesRequest true "Month label"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateInvoicesResponse} "Invoices generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /fees/generate [post]
func (c *FeeController) Generate(ctx *gin.Context) {
	var req dto.GenerateInvoicesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid generation request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.feeService.GenerateMonthlyInvoices(ctx, req.Month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.GenerateInvoicesResponse{Month: req.Month, Created: created}))
}

// SetStructure upserts a class's monthly fee amount
// @Summary Set a class's monthly fee
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.SetClassFeeRequest true "Fee structure"
// @Success 200 {object} dto.SuccessResponse "Fee structure updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /fees/structure [put]
func (c *FeeController) SetStructure(ctx *gin.Context) {
	var req dto.SetClassFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid fee structure data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.feeService.SetClassFee(ctx, req.ClassName, req.Amount); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Fee structure updated"})
}
