package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTCategory mirrors the products.gst_category check constraint.
type GSTCategory string

// Product is the database representation of a catalog entry.
type Product struct {
	ProductCode     string
	ProductName     string
	Category        string
	Brand           string
	BaseUnit        string
	SecondaryUnit   string
	ConversionRate  decimal.Decimal
	MRP             decimal.Decimal
	Discount        decimal.Decimal
	BasePrice       decimal.Decimal
	SecondaryPrice  decimal.Decimal
	GST             decimal.Decimal
	GSTCategory     GSTCategory
	StockQuantity   decimal.Decimal
	LowStockAlert   decimal.Decimal
	SupplierName    string
	BatchNumber     string
	ManufactureDate *time.Time
	ExpiryDate      *time.Time
	AuditFields
}
