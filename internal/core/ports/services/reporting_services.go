package services

import (
	"context"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// ReportingService produces read-only aggregate views.
type ReportingService interface {
	// StockSummary joins catalog, stock ledger and bill history into a
	// per-product uploaded/sold/remaining view with low-stock flags.
	StockSummary(ctx context.Context) ([]domain.StockSummaryRow, error)
}
