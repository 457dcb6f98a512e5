package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// CatalogReaderSvc defines read operations for the product catalog.
type CatalogReaderSvc interface {
	// GetProductByCode retrieves a product by its unique code.
	GetProductByCode(ctx context.Context, productCode string) (*domain.Product, error)

	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CalculatePrice prices a quantity of a product in the requested unit.
	CalculatePrice(ctx context.Context, productCode, unit string, quantity decimal.Decimal) (decimal.Decimal, error)
}

// CatalogWriterSvc defines write operations for the product catalog.
type CatalogWriterSvc interface {
	// CreateProduct uploads a new catalog entry and syncs the stock ledger.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
}

// CatalogSvcFacade combines all catalog service interfaces.
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
