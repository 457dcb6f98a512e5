package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// StockReaderSvc defines read operations on the stock ledger.
type StockReaderSvc interface {
	// GetStockByProductCode retrieves the ledger entry for a product.
	GetStockByProductCode(ctx context.Context, productCode string) (*domain.StockLedgerEntry, error)

	// ListStock retrieves all ledger entries.
	ListStock(ctx context.Context) ([]domain.StockLedgerEntry, error)

	// ListStockHistory retrieves restock events matching the filter.
	ListStockHistory(ctx context.Context, filter portsrepo.StockHistoryFilter) ([]domain.StockHistory, error)

	// IsLowStock reports whether a product's available stock is at or below
	// its alert threshold.
	IsLowStock(ctx context.Context, productCode string) (bool, error)
}

// StockWriterSvc defines write operations on the stock ledger.
type StockWriterSvc interface {
	// Restock adds quantity to a product's ledger entry (creating it if
	// absent) and records a stock history event.
	Restock(ctx context.Context, req dto.RestockRequest) (*domain.StockLedgerEntry, error)

	// ReduceStock manually moves quantity from available to selling.
	ReduceStock(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.StockLedgerEntry, error)
}

// StockSvcFacade combines all stock service interfaces.
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
