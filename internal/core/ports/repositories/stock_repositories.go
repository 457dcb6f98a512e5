package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// StockHistoryFilter narrows a stock history listing.
type StockHistoryFilter struct {
	ProductCode string
	From        *time.Time
	To          *time.Time
}

// StockReader defines read operations for the stock ledger.
type StockReader interface {
	// FindStockByProductCode retrieves the ledger entry for a product code.
	FindStockByProductCode(ctx context.Context, productCode string) (*domain.StockLedgerEntry, error)

	// ListStock retrieves all ledger entries.
	ListStock(ctx context.Context) ([]domain.StockLedgerEntry, error)

	// ListStockHistory retrieves restock events matching the filter, newest first.
	ListStockHistory(ctx context.Context, filter StockHistoryFilter) ([]domain.StockHistory, error)
}

// StockWriter defines write operations for the stock ledger.
type StockWriter interface {
	// IncrementStock lazily creates the ledger entry for the product code and
	// adds the quantity to both total and available, returning the updated entry.
	IncrementStock(ctx context.Context, productCode, productName string, quantity, lowStockAlert decimal.Decimal) (*domain.StockLedgerEntry, error)

	// DeductStock atomically moves quantity from available to selling. The
	// decrement only applies if the resulting available quantity stays
	// non-negative; otherwise apperrors.ErrInsufficientStock is returned and
	// nothing changes. A missing entry is apperrors.ErrNotFound.
	DeductStock(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.StockLedgerEntry, error)

	// SaveStockHistory records a restock event.
	SaveStockHistory(ctx context.Context, history domain.StockHistory) error
}

// StockRepositoryFacade combines all stock repository interfaces.
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
