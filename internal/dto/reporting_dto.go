package dto

import "github.com/srimart/retail_billing_app/internal/core/domain"

// StockSummaryResponse wraps the per-product stock summary rows.
type StockSummaryResponse struct {
	Products []domain.StockSummaryRow `json:"products"`
}
