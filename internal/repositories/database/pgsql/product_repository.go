package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	"github.com/srimart/retail_billing_app/internal/models"
	"github.com/srimart/retail_billing_app/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `
	product_code, product_name, category, brand, base_unit, secondary_unit,
	conversion_rate, mrp, discount, base_price, secondary_price, gst,
	gst_category, stock_quantity, low_stock_alert, supplier_name, batch_number,
	manufacture_date, expiry_date, created_at, created_by, last_updated_at, last_updated_by`

// SaveProduct inserts a new catalog entry.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductCode,
		m.ProductName,
		m.Category,
		m.Brand,
		m.BaseUnit,
		m.SecondaryUnit,
		m.ConversionRate,
		m.MRP,
		m.Discount,
		m.BasePrice,
		m.SecondaryPrice,
		m.GST,
		m.GSTCategory,
		m.StockQuantity,
		m.LowStockAlert,
		m.SupplierName,
		m.BatchNumber,
		m.ManufactureDate,
		m.ExpiryDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: product with code %s already exists", apperrors.ErrDuplicate, m.ProductCode)
		}
		return apperrors.NewAppError(500, "failed to save product "+m.ProductCode, err)
	}
	return nil
}

// FindProductByCode retrieves a product by its unique code.
func (r *PgxProductRepository) FindProductByCode(ctx context.Context, productCode string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_code = $1;`
	return r.findOne(ctx, query, productCode)
}

// FindProductByName retrieves a product by name. Names are not unique; the
// newest match wins.
func (r *PgxProductRepository) FindProductByName(ctx context.Context, productName string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_name = $1 ORDER BY created_at DESC LIMIT 1;`
	return r.findOne(ctx, query, productName)
}

func (r *PgxProductRepository) findOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.ProductCode,
		&m.ProductName,
		&m.Category,
		&m.Brand,
		&m.BaseUnit,
		&m.SecondaryUnit,
		&m.ConversionRate,
		&m.MRP,
		&m.Discount,
		&m.BasePrice,
		&m.SecondaryPrice,
		&m.GST,
		&m.GSTCategory,
		&m.StockQuantity,
		&m.LowStockAlert,
		&m.SupplierName,
		&m.BatchNumber,
		&m.ManufactureDate,
		&m.ExpiryDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product", err)
	}

	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// ListProducts retrieves all products, newest first.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(
			&m.ProductCode,
			&m.ProductName,
			&m.Category,
			&m.Brand,
			&m.BaseUnit,
			&m.SecondaryUnit,
			&m.ConversionRate,
			&m.MRP,
			&m.Discount,
			&m.BasePrice,
			&m.SecondaryPrice,
			&m.GST,
			&m.GSTCategory,
			&m.StockQuantity,
			&m.LowStockAlert,
			&m.SupplierName,
			&m.BatchNumber,
			&m.ManufactureDate,
			&m.ExpiryDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating products", err)
	}

	return products, nil
}
