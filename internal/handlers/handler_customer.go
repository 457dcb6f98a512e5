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

// customerHandler handles HTTP requests related to the customer directory.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.findCustomer)
		customers.GET("/:id", h.getCustomer)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Description Registers a new customer with the next sequential id. A duplicate contact returns the existing customer with status 409.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} dto.CustomerResponse "Customer with this contact already exists"
// @Failure 500 {object} map[string]string "Failed to create customer"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create customer", slog.String("contact", req.Contact))

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate) && customer != nil:
			// The existing record rides along so the till can pick it up.
			logger.Warn("Customer contact already registered", slog.String("contact", req.Contact))
			c.JSON(http.StatusConflict, gin.H{
				"error":    err.Error(),
				"customer": dto.ToCustomerResponse(customer),
			})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating customer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create customer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		}
		return
	}

	logger.Info("Customer created successfully", slog.Int64("customer_id", customer.ID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// findCustomer godoc
// @Summary Find a customer by contact
// @Description Retrieves a customer by their contact number
// @Tags customers
// @Produce json
// @Param contact query string true "Contact number"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Missing contact"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve customer"
// @Router /customers [get]
func (h *customerHandler) findCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	contact := c.Query("contact")
	if contact == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'contact' query parameter"})
		return
	}

	customer, err := h.customerService.GetCustomerByContact(c.Request.Context(), contact)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to find customer by contact", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer by id
// @Description Retrieves a customer by their numeric id
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid customer id"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to retrieve customer"
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id: " + c.Param("id")})
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to get customer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}
