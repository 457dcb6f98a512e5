package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// RestockRequest defines the data needed to add stock for a product.
type RestockRequest struct {
	ProductCode     string          `json:"productCode" binding:"required"`
	ProductName     string          `json:"productName"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	SupplierName    string          `json:"supplierName"`
	BatchNumber     string          `json:"batchNumber"`
	ManufactureDate *time.Time      `json:"manufactureDate"`
	ExpiryDate      *time.Time      `json:"expiryDate"`
	MRP             decimal.Decimal `json:"mrp"`
	SellerPrice     decimal.Decimal `json:"sellerPrice"`
}

// ReduceStockRequest defines a manual stock reduction.
type ReduceStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// StockResponse defines the data returned for a stock ledger entry.
type StockResponse struct {
	ProductCode       string          `json:"productCode"`
	ProductName       string          `json:"productName"`
	TotalQuantity     decimal.Decimal `json:"totalQuantity"`
	AvailableQuantity decimal.Decimal `json:"availableQuantity"`
	SellingQuantity   decimal.Decimal `json:"sellingQuantity"`
	LowStockAlert     decimal.Decimal `json:"lowStockAlert"`
	IsLowStock        bool            `json:"isLowStock"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// StockHistoryResponse defines the data returned for one restock event.
type StockHistoryResponse struct {
	HistoryID       string          `json:"historyID"`
	ProductCode     string          `json:"productCode"`
	ProductName     string          `json:"productName"`
	PreviousStock   decimal.Decimal `json:"previousStock"`
	AddedStock      decimal.Decimal `json:"addedStock"`
	NewStock        decimal.Decimal `json:"newStock"`
	SupplierName    string          `json:"supplierName,omitempty"`
	BatchNumber     string          `json:"batchNumber,omitempty"`
	ManufactureDate *time.Time      `json:"manufactureDate,omitempty"`
	ExpiryDate      *time.Time      `json:"expiryDate,omitempty"`
	MRP             decimal.Decimal `json:"mrp"`
	SellerPrice     decimal.Decimal `json:"sellerPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToStockResponse converts a domain.StockLedgerEntry to its response DTO.
func ToStockResponse(e *domain.StockLedgerEntry) StockResponse {
	return StockResponse{
		ProductCode:       e.ProductCode,
		ProductName:       e.ProductName,
		TotalQuantity:     e.TotalQuantity,
		AvailableQuantity: e.AvailableQuantity,
		SellingQuantity:   e.SellingQuantity,
		LowStockAlert:     e.LowStockAlert,
		IsLowStock:        e.IsLowStock(),
		UpdatedAt:         e.UpdatedAt,
	}
}

// ToStockResponses converts a slice of ledger entries.
func ToStockResponses(entries []domain.StockLedgerEntry) []StockResponse {
	out := make([]StockResponse, len(entries))
	for i := range entries {
		out[i] = ToStockResponse(&entries[i])
	}
	return out
}

// ToStockHistoryResponse converts a domain.StockHistory to its response DTO.
func ToStockHistoryResponse(h *domain.StockHistory) StockHistoryResponse {
	return StockHistoryResponse{
		HistoryID:       h.HistoryID,
		ProductCode:     h.ProductCode,
		ProductName:     h.ProductName,
		PreviousStock:   h.PreviousStock,
		AddedStock:      h.AddedStock,
		NewStock:        h.NewStock,
		SupplierName:    h.SupplierName,
		BatchNumber:     h.BatchNumber,
		ManufactureDate: h.ManufactureDate,
		ExpiryDate:      h.ExpiryDate,
		MRP:             h.MRP,
		SellerPrice:     h.SellerPrice,
		CreatedAt:       h.CreatedAt,
	}
}

// ToStockHistoryResponses converts a slice of restock events.
func ToStockHistoryResponses(history []domain.StockHistory) []StockHistoryResponse {
	out := make([]StockHistoryResponse, len(history))
	for i := range history {
		out[i] = ToStockHistoryResponse(&history[i])
	}
	return out
}
