package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/dto"
	"github.com/srimart/retail_billing_app/internal/middleware"
)

// billHandler handles HTTP requests related to bills and settlement.
type billHandler struct {
	billingService portssvc.BillingSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(bs portssvc.BillingSvcFacade) *billHandler {
	return &billHandler{
		billingService: bs,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillHandler(billingService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("/unpaid", h.listUnpaidBills)
		bills.POST("/settle-outstanding", h.settleOutstanding)
	}
}

// createBill godoc
// @Summary Create a bill
// @Description Runs the full sale settlement: stock preflight, bill creation, stock deduction, settlement of selected outstanding bills and the customer credit resync
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.CreateBillResponse
// @Failure 400 {object} map[string]string "Validation error or insufficient stock"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Bill number already exists"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create bill",
		slog.String("bill_number", req.BillNumber),
		slog.Int64("customer_id", req.Customer.ID))

	result, err := h.billingService.CreateBill(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientStock), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Cannot create bill", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Missing dependency creating bill", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate bill number", slog.String("bill_number", req.BillNumber))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create bill in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		}
		return
	}

	logger.Info("Bill created successfully", slog.String("bill_id", result.Bill.BillID))
	c.JSON(http.StatusCreated, result)
}

// listUnpaidBills godoc
// @Summary List unpaid bills
// @Description Retrieves a customer's bills with a positive unpaid balance, oldest first
// @Tags bills
// @Produce json
// @Param customerId query int true "Customer ID"
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid customer id"
// @Failure 500 {object} map[string]string "Failed to list unpaid bills"
// @Router /bills/unpaid [get]
func (h *billHandler) listUnpaidBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id: " + c.Query("customerId")})
		return
	}

	bills, err := h.billingService.ListUnpaidBills(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to list unpaid bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list unpaid bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponses(bills))
}

// settleOutstanding godoc
// @Summary Settle outstanding bills
// @Description Applies a payment against selected outstanding bills, oldest first, and resyncs the customer's credit
// @Tags bills
// @Accept json
// @Produce json
// @Param settlement body dto.SettleOutstandingRequest true "Settlement details"
// @Success 200 {object} dto.SettleOutstandingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "No outstanding bills found"
// @Failure 500 {object} map[string]string "Failed to settle outstanding bills"
// @Router /bills/settle-outstanding [post]
func (h *billHandler) settleOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SettleOutstandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleOutstanding", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to settle outstanding bills",
		slog.Int64("customer_id", req.CustomerID),
		slog.String("amount_paid", req.AmountPaid.String()))

	result, err := h.billingService.SettleOutstanding(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error settling outstanding bills", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No outstanding bills to settle", slog.Int64("customer_id", req.CustomerID))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to settle outstanding bills in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle outstanding bills"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
