package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// CreateProductRequest defines the data needed to upload a catalog entry.
type CreateProductRequest struct {
	ProductName     string          `json:"productName" binding:"required"`
	ProductCode     string          `json:"productCode" binding:"required"`
	Category        string          `json:"category"`
	Brand           string          `json:"brand"`
	BaseUnit        string          `json:"baseUnit" binding:"required"`
	SecondaryUnit   string          `json:"secondaryUnit"`
	ConversionRate  decimal.Decimal `json:"conversionRate"`
	MRP             decimal.Decimal `json:"mrp" binding:"required"`
	Discount        decimal.Decimal `json:"discount"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	GST             decimal.Decimal `json:"gst"`
	GSTCategory     string          `json:"gstCategory" binding:"required,oneof=GST Non-GST"`
	StockQuantity   decimal.Decimal `json:"stockQuantity"`
	LowStockAlert   decimal.Decimal `json:"lowStockAlert"`
	SupplierName    string          `json:"supplierName"`
	BatchNumber     string          `json:"batchNumber"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      *time.Time      `json:"expiryDate"`
}

// ProductResponse defines the data returned for a catalog entry.
type ProductResponse struct {
	ProductCode    string          `json:"productCode"`
	ProductName    string          `json:"productName"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	BaseUnit       string          `json:"baseUnit"`
	SecondaryUnit  string          `json:"secondaryUnit,omitempty"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	MRP            decimal.Decimal `json:"mrp"`
	Discount       decimal.Decimal `json:"discount"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	SecondaryPrice decimal.Decimal `json:"secondaryPrice"`
	GST            decimal.Decimal `json:"gst"`
	GSTCategory    string          `json:"gstCategory"`
	StockQuantity  decimal.Decimal `json:"stockQuantity"`
	LowStockAlert  decimal.Decimal `json:"lowStockAlert"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PriceResponse is the result of a price calculation for a quantity in a unit.
type PriceResponse struct {
	Price decimal.Decimal `json:"price"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductCode:    p.ProductCode,
		ProductName:    p.ProductName,
		Category:       p.Category,
		Brand:          p.Brand,
		BaseUnit:       p.BaseUnit,
		SecondaryUnit:  p.SecondaryUnit,
		ConversionRate: p.ConversionRate,
		MRP:            p.MRP,
		Discount:       p.Discount,
		BasePrice:      p.BasePrice,
		SecondaryPrice: p.SecondaryPrice,
		GST:            p.GST,
		GSTCategory:    string(p.GSTCategory),
		StockQuantity:  p.StockQuantity,
		LowStockAlert:  p.LowStockAlert,
		CreatedAt:      p.CreatedAt,
	}
}

// ToProductResponses converts a slice of products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
