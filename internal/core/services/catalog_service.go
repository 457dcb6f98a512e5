package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/dto"
)

var thousand = decimal.NewFromInt(1000)

// catalogService provides product catalog operations. Uploading a product
// also raises the product's stock ledger entry so billing can validate
// availability from the first sale.
type catalogService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	stockRepo   portsrepo.StockRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo portsrepo.ProductRepositoryFacade, stockRepo portsrepo.StockRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	conversionRate := req.ConversionRate
	if !conversionRate.IsPositive() {
		conversionRate = decimal.NewFromInt(1)
	}

	basePrice := req.BasePrice
	if basePrice.IsZero() {
		basePrice = req.MRP
	}

	var secondaryPrice decimal.Decimal
	if req.SecondaryUnit != "" {
		secondaryPrice = basePrice.Div(conversionRate)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductCode:     req.ProductCode,
		ProductName:     req.ProductName,
		Category:        req.Category,
		Brand:           req.Brand,
		BaseUnit:        req.BaseUnit,
		SecondaryUnit:   req.SecondaryUnit,
		ConversionRate:  conversionRate,
		MRP:             req.MRP,
		Discount:        req.Discount,
		BasePrice:       basePrice,
		SecondaryPrice:  secondaryPrice,
		GST:             req.GST,
		GSTCategory:     domain.GSTCategory(req.GSTCategory),
		StockQuantity:   req.StockQuantity,
		LowStockAlert:   req.LowStockAlert,
		SupplierName:    req.SupplierName,
		BatchNumber:     req.BatchNumber,
		ManufactureDate: req.ManufactureDate,
		ExpiryDate:      req.ExpiryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_code", product.ProductCode))
		return nil, err
	}

	// Sync the uploaded quantity into the stock ledger. The entry is created
	// lazily on first upload and incremented on every subsequent one.
	if req.StockQuantity.IsPositive() {
		if _, err := s.stockRepo.IncrementStock(ctx, product.ProductCode, product.ProductName, req.StockQuantity, req.LowStockAlert); err != nil {
			s.LogError(ctx, err, "Failed to sync stock ledger for new product", slog.String("product_code", product.ProductCode))
			return nil, fmt.Errorf("product saved but stock sync failed: %w", err)
		}
	}

	s.LogInfo(ctx, "Product created", slog.String("product_code", product.ProductCode), slog.String("product_name", product.ProductName))
	return &product, nil
}

func (s *catalogService) GetProductByCode(ctx context.Context, productCode string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByCode(ctx, productCode)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// CalculatePrice prices a quantity in the requested unit. Base and secondary
// units use their configured prices; the legacy gram/kg and ml/liter pairs
// fall back to basePrice/1000. Anything else is rejected.
func (s *catalogService) CalculatePrice(ctx context.Context, productCode, unit string, quantity decimal.Decimal) (decimal.Decimal, error) {
	product, err := s.productRepo.FindProductByCode(ctx, productCode)
	if err != nil {
		return decimal.Zero, err
	}

	switch {
	case unit == product.BaseUnit:
		return product.BasePrice.Mul(quantity), nil
	case unit != "" && unit == product.SecondaryUnit:
		return product.SecondaryPrice.Mul(quantity), nil
	case unit == "gram" && product.BaseUnit == "kg",
		unit == "ml" && product.BaseUnit == "liter":
		return product.BasePrice.Div(thousand).Mul(quantity), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: invalid unit conversion from %q for product %s", apperrors.ErrValidation, unit, productCode)
	}
}
