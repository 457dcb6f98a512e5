package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/utils/units"
)

// reportingService builds read-only aggregate views over catalog, ledger and
// bill history. It never mutates anything.
type reportingService struct {
	BaseService
	productRepo portsrepo.ProductReader
	stockRepo   portsrepo.StockReader
	billRepo    portsrepo.BillReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(productRepo portsrepo.ProductReader, stockRepo portsrepo.StockReader, billRepo portsrepo.BillReader) portssvc.ReportingService {
	return &reportingService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		billRepo:    billRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// StockSummary joins the catalog, stock ledger and historical bill items
// into one row per product. Products that appear only in bills are included
// with category "Unknown" and zero initial stock.
func (s *reportingService) StockSummary(ctx context.Context) ([]domain.StockSummaryRow, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for stock summary: %w", err)
	}

	ledger, err := s.stockRepo.ListStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock ledger for stock summary: %w", err)
	}
	ledgerByCode := make(map[string]domain.StockLedgerEntry, len(ledger))
	for _, entry := range ledger {
		ledgerByCode[entry.ProductCode] = entry
	}

	soldItems, err := s.billRepo.ListSoldItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sold items for stock summary: %w", err)
	}

	productByName := make(map[string]domain.Product, len(products))
	for _, p := range products {
		if _, seen := productByName[p.ProductName]; !seen {
			productByName[p.ProductName] = p
		}
	}

	// Accumulate sold quantities in base units, keyed by product name as the
	// bills record it. Items without a catalog match keep their raw quantity.
	soldByName := make(map[string]decimal.Decimal)
	for _, item := range soldItems {
		qty := item.Quantity
		if p, ok := productByName[item.ProductName]; ok {
			qty = units.ToBaseUnits(item.Quantity, item.Unit, p)
		}
		soldByName[item.ProductName] = soldByName[item.ProductName].Add(qty)
	}

	rows := make([]domain.StockSummaryRow, 0, len(products)+len(soldByName))
	seen := make(map[string]bool, len(products))

	for _, p := range products {
		sold := soldByName[p.ProductName]
		seen[p.ProductName] = true

		current, ok := currentFromLedger(ledgerByCode, p.ProductCode)
		if !ok {
			// No ledger entry; fall back to uploaded minus sold, clamped at zero.
			current = p.StockQuantity.Sub(sold)
			if current.IsNegative() {
				current = decimal.Zero
			}
		}

		rows = append(rows, summaryRow(p, p.StockQuantity, sold, current))
	}

	// Products that only ever appear on bills.
	for name, sold := range soldByName {
		if seen[name] {
			continue
		}
		rows = append(rows, domain.StockSummaryRow{
			ProductName:         name,
			Category:            "Unknown",
			ConversionRate:      decimal.NewFromInt(1),
			InitialStock:        decimal.Zero,
			TotalSold:           sold,
			CurrentStock:        decimal.Zero,
			InitialStockDisplay: decimal.Zero,
			TotalSoldDisplay:    sold,
			CurrentStockDisplay: decimal.Zero,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductName < rows[j].ProductName })

	s.LogInfo(ctx, "Stock summary generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

func currentFromLedger(ledger map[string]domain.StockLedgerEntry, productCode string) (decimal.Decimal, bool) {
	entry, ok := ledger[productCode]
	if !ok {
		return decimal.Zero, false
	}
	return entry.AvailableQuantity, true
}

func summaryRow(p domain.Product, initial, sold, current decimal.Decimal) domain.StockSummaryRow {
	displayUnit := p.SecondaryUnit
	if displayUnit == "" {
		displayUnit = p.BaseUnit
	}

	return domain.StockSummaryRow{
		ProductCode:         p.ProductCode,
		ProductName:         p.ProductName,
		Category:            p.Category,
		BaseUnit:            p.BaseUnit,
		SecondaryUnit:       p.SecondaryUnit,
		ConversionRate:      units.Rate(p),
		InitialStock:        initial,
		TotalSold:           sold,
		CurrentStock:        current,
		InitialStockDisplay: units.ToDisplayUnits(initial, displayUnit, p),
		TotalSoldDisplay:    units.ToDisplayUnits(sold, displayUnit, p),
		CurrentStockDisplay: units.ToDisplayUnits(current, displayUnit, p),
		LowStockAlert:       p.LowStockAlert,
		IsLowStock:          current.LessThanOrEqual(p.LowStockAlert),
	}
}
