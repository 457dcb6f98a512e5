package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTCategory indicates whether a product is taxed under GST.
type GSTCategory string

const (
	GST    GSTCategory = "GST"
	NonGST GSTCategory = "Non-GST"
)

// Product is a catalog entry, keyed by its unique product code.
// Stock quantities are always expressed in the product's base unit; the
// secondary unit is a display/sale unit convertible via ConversionRate
// (secondary units per base unit, e.g. 1000 grams per kg).
type Product struct {
	ProductCode     string          `json:"productCode"`
	ProductName     string          `json:"productName"`
	Category        string          `json:"category"`
	Brand           string          `json:"brand"`
	BaseUnit        string          `json:"baseUnit"`
	SecondaryUnit   string          `json:"secondaryUnit"`
	ConversionRate  decimal.Decimal `json:"conversionRate"`
	MRP             decimal.Decimal `json:"mrp"`
	Discount        decimal.Decimal `json:"discount"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	SecondaryPrice  decimal.Decimal `json:"secondaryPrice"`
	GST             decimal.Decimal `json:"gst"`
	GSTCategory     GSTCategory     `json:"gstCategory"`
	StockQuantity   decimal.Decimal `json:"stockQuantity"` // as uploaded, base units
	LowStockAlert   decimal.Decimal `json:"lowStockAlert"`
	SupplierName    string          `json:"supplierName"`
	BatchNumber     string          `json:"batchNumber"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      *time.Time      `json:"expiryDate"`
	AuditFields
}
