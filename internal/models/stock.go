package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLedgerEntry is the database representation of per-product stock counts.
type StockLedgerEntry struct {
	ProductCode       string
	ProductName       string
	TotalQuantity     decimal.Decimal
	AvailableQuantity decimal.Decimal
	SellingQuantity   decimal.Decimal
	LowStockAlert     decimal.Decimal
	UpdatedAt         time.Time
}

// StockHistory is the database representation of a restock event.
type StockHistory struct {
	HistoryID       string
	ProductCode     string
	ProductName     string
	PreviousStock   decimal.Decimal
	AddedStock      decimal.Decimal
	NewStock        decimal.Decimal
	SupplierName    string
	BatchNumber     string
	ManufactureDate *time.Time
	ExpiryDate      *time.Time
	MRP             decimal.Decimal
	SellerPrice     decimal.Decimal
	CreatedAt       time.Time
}
