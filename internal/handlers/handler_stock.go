package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/dto"
	"github.com/srimart/retail_billing_app/internal/middleware"
)

// stockHandler handles HTTP requests related to the stock ledger.
type stockHandler struct {
	stockService     portssvc.StockSvcFacade
	reportingService portssvc.ReportingService
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockSvcFacade, rs portssvc.ReportingService) *stockHandler {
	return &stockHandler{
		stockService:     ss,
		reportingService: rs,
	}
}

// registerStockRoutes registers routes related to the stock ledger.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade, reportingService portssvc.ReportingService) {
	h := newStockHandler(stockService, reportingService)

	stock := rg.Group("/stock")
	{
		stock.POST("/add", h.restock)
		stock.PATCH("/reduce/:code", h.reduceStock)
		stock.GET("", h.listStock)
		stock.GET("/summary", h.stockSummary)
		stock.GET("/history", h.listStockHistory)
		stock.GET("/:code", h.getStock)
	}
}

// restock godoc
// @Summary Add stock
// @Description Adds quantity to a product's ledger entry and records a restock event
// @Tags stock
// @Accept json
// @Produce json
// @Param restock body dto.RestockRequest true "Restock details"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to add stock"
// @Router /stock/add [post]
func (h *stockHandler) restock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Restock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to add stock",
		slog.String("product_code", req.ProductCode),
		slog.String("quantity", req.Quantity.String()))

	entry, err := h.stockService.Restock(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adding stock", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for restock", slog.String("product_code", req.ProductCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			logger.Error("Failed to add stock in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add stock"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(entry))
}

// reduceStock godoc
// @Summary Reduce stock
// @Description Manually moves quantity from available to selling
// @Tags stock
// @Accept json
// @Produce json
// @Param code path string true "Product code"
// @Param reduction body dto.ReduceStockRequest true "Quantity to reduce"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} map[string]string "Validation error or insufficient stock"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to reduce stock"
// @Router /stock/reduce/{code} [patch]
func (h *stockHandler) reduceStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productCode := c.Param("code")

	var req dto.ReduceStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReduceStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.stockService.ReduceStock(c.Request.Context(), productCode, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInsufficientStock):
			logger.Warn("Cannot reduce stock", slog.String("product_code", productCode), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for stock reduction", slog.String("product_code", productCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			logger.Error("Failed to reduce stock in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reduce stock"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(entry))
}

// getStock godoc
// @Summary Get stock for a product
// @Description Retrieves the ledger entry for a product code
// @Tags stock
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} map[string]string "Stock entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve stock"
// @Router /stock/{code} [get]
func (h *stockHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productCode := c.Param("code")

	entry, err := h.stockService.GetStockByProductCode(c.Request.Context(), productCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock entry not found"})
		} else {
			logger.Error("Failed to get stock from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stock"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(entry))
}

// listStock godoc
// @Summary List stock
// @Description Retrieves all stock ledger entries
// @Tags stock
// @Produce json
// @Success 200 {array} dto.StockResponse
// @Failure 500 {object} map[string]string "Failed to list stock"
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.stockService.ListStock(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponses(entries))
}

// stockSummary godoc
// @Summary Stock summary
// @Description Joins catalog, stock ledger and bill history into a per-product uploaded/sold/remaining view
// @Tags stock
// @Produce json
// @Success 200 {object} dto.StockSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build stock summary"
// @Router /stock/summary [get]
func (h *stockHandler) stockSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.StockSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build stock summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build stock summary"})
		return
	}

	c.JSON(http.StatusOK, dto.StockSummaryResponse{Products: rows})
}

// listStockHistory godoc
// @Summary List stock history
// @Description Retrieves restock events, optionally filtered by product code and date range
// @Tags stock
// @Produce json
// @Param productCode query string false "Product code"
// @Param from query string false "Start date (RFC 3339)"
// @Param to query string false "End date (RFC 3339)"
// @Success 200 {array} dto.StockHistoryResponse
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Failure 500 {object} map[string]string "Failed to list stock history"
// @Router /stock/history [get]
func (h *stockHandler) listStockHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := portsrepo.StockHistoryFilter{ProductCode: c.Query("productCode")}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date: " + raw})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date: " + raw})
			return
		}
		filter.To = &to
	}

	history, err := h.stockService.ListStockHistory(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list stock history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockHistoryResponses(history))
}
