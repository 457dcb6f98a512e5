package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// stockService provides stock ledger operations. All quantities entering
// this service are already in base units.
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// Restock adds quantity to the product's ledger entry, creating it when
// absent, and records the event in stock history.
func (s *stockService) Restock(ctx context.Context, req dto.RestockRequest) (*domain.StockLedgerEntry, error) {
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: restock quantity must be greater than 0", apperrors.ErrValidation)
	}

	var previousStock decimal.Decimal
	existing, err := s.stockRepo.FindStockByProductCode(ctx, req.ProductCode)
	switch {
	case err == nil:
		previousStock = existing.AvailableQuantity
	case errors.Is(err, apperrors.ErrNotFound):
		previousStock = decimal.Zero
	default:
		return nil, err
	}

	entry, err := s.stockRepo.IncrementStock(ctx, req.ProductCode, req.ProductName, req.Quantity, decimal.Zero)
	if err != nil {
		s.LogError(ctx, err, "Failed to increment stock", slog.String("product_code", req.ProductCode))
		return nil, err
	}

	history := domain.StockHistory{
		HistoryID:       uuid.NewString(),
		ProductCode:     req.ProductCode,
		ProductName:     entry.ProductName,
		PreviousStock:   previousStock,
		AddedStock:      req.Quantity,
		NewStock:        previousStock.Add(req.Quantity),
		SupplierName:    req.SupplierName,
		BatchNumber:     req.BatchNumber,
		ManufactureDate: req.ManufactureDate,
		ExpiryDate:      req.ExpiryDate,
		MRP:             req.MRP,
		SellerPrice:     req.SellerPrice,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.stockRepo.SaveStockHistory(ctx, history); err != nil {
		// The ledger update already committed; a missing history row is
		// an audit gap, not a stock inconsistency.
		s.LogError(ctx, err, "Failed to record stock history", slog.String("product_code", req.ProductCode))
		return nil, err
	}

	s.LogInfo(ctx, "Stock added",
		slog.String("product_code", req.ProductCode),
		slog.String("quantity", req.Quantity.String()))
	return entry, nil
}

// ReduceStock moves quantity from available to selling. The underlying
// update is conditional, so concurrent reductions cannot push available
// below zero.
func (s *stockService) ReduceStock(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.StockLedgerEntry, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", apperrors.ErrValidation)
	}

	entry, err := s.stockRepo.DeductStock(ctx, productCode, quantity)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Stock reduced",
		slog.String("product_code", productCode),
		slog.String("quantity", quantity.String()))
	return entry, nil
}

func (s *stockService) GetStockByProductCode(ctx context.Context, productCode string) (*domain.StockLedgerEntry, error) {
	return s.stockRepo.FindStockByProductCode(ctx, productCode)
}

func (s *stockService) ListStock(ctx context.Context) ([]domain.StockLedgerEntry, error) {
	return s.stockRepo.ListStock(ctx)
}

func (s *stockService) ListStockHistory(ctx context.Context, filter portsrepo.StockHistoryFilter) ([]domain.StockHistory, error) {
	return s.stockRepo.ListStockHistory(ctx, filter)
}

func (s *stockService) IsLowStock(ctx context.Context, productCode string) (bool, error) {
	entry, err := s.stockRepo.FindStockByProductCode(ctx, productCode)
	if err != nil {
		return false, err
	}
	return entry.IsLowStock(), nil
}
