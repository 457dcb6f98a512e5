package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLedgerEntry tracks stock quantities for one product code, in base units.
// AvailableQuantity should equal TotalQuantity - SellingQuantity after every
// mutation; the storage layer enforces that deductions never push available
// below zero.
type StockLedgerEntry struct {
	ProductCode       string          `json:"productCode"`
	ProductName       string          `json:"productName"`
	TotalQuantity     decimal.Decimal `json:"totalQuantity"`
	AvailableQuantity decimal.Decimal `json:"availableQuantity"`
	SellingQuantity   decimal.Decimal `json:"sellingQuantity"`
	LowStockAlert     decimal.Decimal `json:"lowStockAlert"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// IsLowStock reports whether available stock is at or below the alert threshold.
func (e *StockLedgerEntry) IsLowStock() bool {
	return e.AvailableQuantity.LessThanOrEqual(e.LowStockAlert)
}

// StockHistory records a single restock event for audit purposes.
type StockHistory struct {
	HistoryID       string          `json:"historyID"`
	ProductCode     string          `json:"productCode"`
	ProductName     string          `json:"productName"`
	PreviousStock   decimal.Decimal `json:"previousStock"`
	AddedStock      decimal.Decimal `json:"addedStock"`
	NewStock        decimal.Decimal `json:"newStock"`
	SupplierName    string          `json:"supplierName"`
	BatchNumber     string          `json:"batchNumber"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      *time.Time      `json:"expiryDate"`
	MRP             decimal.Decimal `json:"mrp"`
	SellerPrice     decimal.Decimal `json:"sellerPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
}
