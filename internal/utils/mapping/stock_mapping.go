package mapping

import (
	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/models"
)

// ToDomainStockLedgerEntry converts a models.StockLedgerEntry read from the DB.
func ToDomainStockLedgerEntry(m models.StockLedgerEntry) domain.StockLedgerEntry {
	return domain.StockLedgerEntry{
		ProductCode:       m.ProductCode,
		ProductName:       m.ProductName,
		TotalQuantity:     m.TotalQuantity,
		AvailableQuantity: m.AvailableQuantity,
		SellingQuantity:   m.SellingQuantity,
		LowStockAlert:     m.LowStockAlert,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToModelStockHistory converts a domain.StockHistory for DB storage.
func ToModelStockHistory(d domain.StockHistory) models.StockHistory {
	return models.StockHistory{
		HistoryID:       d.HistoryID,
		ProductCode:     d.ProductCode,
		ProductName:     d.ProductName,
		PreviousStock:   d.PreviousStock,
		AddedStock:      d.AddedStock,
		NewStock:        d.NewStock,
		SupplierName:    d.SupplierName,
		BatchNumber:     d.BatchNumber,
		ManufactureDate: d.ManufactureDate,
		ExpiryDate:      d.ExpiryDate,
		MRP:             d.MRP,
		SellerPrice:     d.SellerPrice,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainStockHistory converts a models.StockHistory read from the DB.
func ToDomainStockHistory(m models.StockHistory) domain.StockHistory {
	return domain.StockHistory{
		HistoryID:       m.HistoryID,
		ProductCode:     m.ProductCode,
		ProductName:     m.ProductName,
		PreviousStock:   m.PreviousStock,
		AddedStock:      m.AddedStock,
		NewStock:        m.NewStock,
		SupplierName:    m.SupplierName,
		BatchNumber:     m.BatchNumber,
		ManufactureDate: m.ManufactureDate,
		ExpiryDate:      m.ExpiryDate,
		MRP:             m.MRP,
		SellerPrice:     m.SellerPrice,
		CreatedAt:       m.CreatedAt,
	}
}
