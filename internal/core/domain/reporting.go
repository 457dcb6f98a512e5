package domain

import "github.com/shopspring/decimal"

// SoldItem is one bill line item projected down to what the stock summary
// needs: the product name, the quantity and the unit it was sold in.
type SoldItem struct {
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
}

// StockSummaryRow is one row of the per-product stock summary report.
// Quantities are reported both in base units and, when the product has a
// secondary unit, converted to that display unit.
type StockSummaryRow struct {
	ProductCode         string          `json:"productCode"`
	ProductName         string          `json:"productName"`
	Category            string          `json:"category"`
	BaseUnit            string          `json:"baseUnit"`
	SecondaryUnit       string          `json:"secondaryUnit,omitempty"`
	ConversionRate      decimal.Decimal `json:"conversionRate"`
	InitialStock        decimal.Decimal `json:"initialStock"`
	TotalSold           decimal.Decimal `json:"totalSold"`
	CurrentStock        decimal.Decimal `json:"currentStock"`
	InitialStockDisplay decimal.Decimal `json:"initialStockDisplay"`
	TotalSoldDisplay    decimal.Decimal `json:"totalSoldDisplay"`
	CurrentStockDisplay decimal.Decimal `json:"currentStockDisplay"`
	LowStockAlert       decimal.Decimal `json:"lowStockAlert"`
	IsLowStock          bool            `json:"isLowStock"`
}
