package repositories

import (
	"context"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// ProductReader defines read operations for catalog data.
type ProductReader interface {
	// FindProductByCode retrieves a product by its unique product code.
	FindProductByCode(ctx context.Context, productCode string) (*domain.Product, error)

	// FindProductByName retrieves a product by name. Names are not unique;
	// when they collide the most recently created product wins.
	FindProductByName(ctx context.Context, productName string) (*domain.Product, error)

	// ListProducts retrieves all products, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data.
type ProductWriter interface {
	// SaveProduct inserts a new product. A duplicate product code is
	// reported as apperrors.ErrDuplicate.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
