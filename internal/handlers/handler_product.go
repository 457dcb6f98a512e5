package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/dto"
	"github.com/srimart/retail_billing_app/internal/middleware"
)

// productHandler handles HTTP requests related to the product catalog.
type productHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(cs portssvc.CatalogSvcFacade) *productHandler {
	return &productHandler{
		catalogService: cs,
	}
}

// registerProductRoutes registers routes related to the product catalog.
func registerProductRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newProductHandler(catalogService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/code/:code", h.getProductByCode)
		products.GET("/calculate-price/:code", h.calculatePrice)
	}
}

// createProduct godoc
// @Summary Upload a new product
// @Description Creates a catalog entry and seeds the stock ledger with its initial stock
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Product code already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create product", slog.String("product_code", req.ProductCode))

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate product code", slog.String("product_code", req.ProductCode))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	logger.Info("Product created successfully", slog.String("product_code", product.ProductCode))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Retrieves all catalog entries, newest first
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// getProductByCode godoc
// @Summary Get a product by code
// @Description Retrieves a catalog entry by its unique product code
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Router /products/code/{code} [get]
func (h *productHandler) getProductByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productCode := c.Param("code")

	product, err := h.catalogService.GetProductByCode(c.Request.Context(), productCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found", slog.String("product_code", productCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// calculatePrice godoc
// @Summary Calculate a price
// @Description Prices a quantity of a product in the requested unit
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Param unit query string true "Unit to price in"
// @Param quantity query number true "Quantity in that unit"
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} map[string]string "Unknown unit or invalid quantity"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to calculate price"
// @Router /products/calculate-price/{code} [get]
func (h *productHandler) calculatePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productCode := c.Param("code")
	unit := c.Query("unit")

	quantity, err := decimal.NewFromString(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity: " + c.Query("quantity")})
		return
	}

	price, err := h.catalogService.CalculatePrice(c.Request.Context(), productCode, unit, quantity)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for price calculation", slog.String("product_code", productCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid unit for price calculation",
				slog.String("product_code", productCode), slog.String("unit", unit))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to calculate price", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate price"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PriceResponse{Price: price})
}
