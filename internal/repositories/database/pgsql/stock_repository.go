package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	"github.com/srimart/retail_billing_app/internal/models"
	"github.com/srimart/retail_billing_app/internal/utils/mapping"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock ledger data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

const stockColumns = `product_code, product_name, total_quantity, available_quantity, selling_quantity, low_stock_alert, updated_at`

// FindStockByProductCode retrieves the ledger entry for a product code.
func (r *PgxStockRepository) FindStockByProductCode(ctx context.Context, productCode string) (*domain.StockLedgerEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_ledger WHERE product_code = $1;`

	var m models.StockLedgerEntry
	err := r.Pool.QueryRow(ctx, query, productCode).Scan(
		&m.ProductCode,
		&m.ProductName,
		&m.TotalQuantity,
		&m.AvailableQuantity,
		&m.SellingQuantity,
		&m.LowStockAlert,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stock for product "+productCode, err)
	}

	entry := mapping.ToDomainStockLedgerEntry(m)
	return &entry, nil
}

// ListStock retrieves all ledger entries ordered by product name.
func (r *PgxStockRepository) ListStock(ctx context.Context) ([]domain.StockLedgerEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_ledger ORDER BY product_name ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock ledger", err)
	}
	defer rows.Close()

	var entries []domain.StockLedgerEntry
	for rows.Next() {
		var m models.StockLedgerEntry
		if err := rows.Scan(
			&m.ProductCode,
			&m.ProductName,
			&m.TotalQuantity,
			&m.AvailableQuantity,
			&m.SellingQuantity,
			&m.LowStockAlert,
			&m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock ledger entry", err)
		}
		entries = append(entries, mapping.ToDomainStockLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock ledger", err)
	}

	return entries, nil
}

// IncrementStock lazily creates the ledger entry and adds the quantity to
// both total and available. A zero low-stock alert on a restock keeps the
// threshold already on the row.
func (r *PgxStockRepository) IncrementStock(ctx context.Context, productCode, productName string, quantity, lowStockAlert decimal.Decimal) (*domain.StockLedgerEntry, error) {
	query := `
		INSERT INTO stock_ledger (product_code, product_name, total_quantity, available_quantity, selling_quantity, low_stock_alert, updated_at)
		VALUES ($1, $2, $3, $3, 0, $4, $5)
		ON CONFLICT (product_code) DO UPDATE SET
			product_name       = EXCLUDED.product_name,
			total_quantity     = stock_ledger.total_quantity + EXCLUDED.total_quantity,
			available_quantity = stock_ledger.available_quantity + EXCLUDED.available_quantity,
			low_stock_alert    = CASE WHEN EXCLUDED.low_stock_alert > 0 THEN EXCLUDED.low_stock_alert ELSE stock_ledger.low_stock_alert END,
			updated_at         = EXCLUDED.updated_at
		RETURNING ` + stockColumns + `;
	`

	var m models.StockLedgerEntry
	err := r.Pool.QueryRow(ctx, query, productCode, productName, quantity, lowStockAlert, time.Now().UTC()).Scan(
		&m.ProductCode,
		&m.ProductName,
		&m.TotalQuantity,
		&m.AvailableQuantity,
		&m.SellingQuantity,
		&m.LowStockAlert,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to increment stock for product "+productCode, err)
	}

	entry := mapping.ToDomainStockLedgerEntry(m)
	return &entry, nil
}

// DeductStock moves quantity from available to selling in a single
// conditional UPDATE. The WHERE clause guards the balance so concurrent
// deductions can never drive available below zero.
func (r *PgxStockRepository) DeductStock(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.StockLedgerEntry, error) {
	query := `
		UPDATE stock_ledger SET
			available_quantity = available_quantity - $2,
			selling_quantity   = selling_quantity + $2,
			updated_at         = $3
		WHERE product_code = $1 AND available_quantity >= $2
		RETURNING ` + stockColumns + `;
	`

	var m models.StockLedgerEntry
	err := r.Pool.QueryRow(ctx, query, productCode, quantity, time.Now().UTC()).Scan(
		&m.ProductCode,
		&m.ProductName,
		&m.TotalQuantity,
		&m.AvailableQuantity,
		&m.SellingQuantity,
		&m.LowStockAlert,
		&m.UpdatedAt,
	)
	if err == nil {
		entry := mapping.ToDomainStockLedgerEntry(m)
		return &entry, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to deduct stock for product "+productCode, err)
	}

	// No row matched: either the entry is missing or the balance is short.
	existing, findErr := r.FindStockByProductCode(ctx, productCode)
	if findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("%w: product %s has %s available, requested %s",
		apperrors.ErrInsufficientStock, productCode, existing.AvailableQuantity.String(), quantity.String())
}

// SaveStockHistory records a restock event.
func (r *PgxStockRepository) SaveStockHistory(ctx context.Context, history domain.StockHistory) error {
	m := mapping.ToModelStockHistory(history)

	query := `
		INSERT INTO stock_history (
			history_id, product_code, product_name, previous_stock, added_stock,
			new_stock, supplier_name, batch_number, manufacture_date, expiry_date,
			mrp, seller_price, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HistoryID,
		m.ProductCode,
		m.ProductName,
		m.PreviousStock,
		m.AddedStock,
		m.NewStock,
		m.SupplierName,
		m.BatchNumber,
		m.ManufactureDate,
		m.ExpiryDate,
		m.MRP,
		m.SellerPrice,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save stock history for product "+m.ProductCode, err)
	}
	return nil
}

// ListStockHistory retrieves restock events matching the filter, newest first.
func (r *PgxStockRepository) ListStockHistory(ctx context.Context, filter portsrepo.StockHistoryFilter) ([]domain.StockHistory, error) {
	query := `
		SELECT history_id, product_code, product_name, previous_stock, added_stock,
			new_stock, supplier_name, batch_number, manufacture_date, expiry_date,
			mrp, seller_price, created_at
		FROM stock_history
	`
	var (
		conditions []string
		args       []any
	)
	if filter.ProductCode != "" {
		args = append(args, filter.ProductCode)
		conditions = append(conditions, "product_code = $"+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, "created_at <= $"+strconv.Itoa(len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock history", err)
	}
	defer rows.Close()

	var history []domain.StockHistory
	for rows.Next() {
		var m models.StockHistory
		if err := rows.Scan(
			&m.HistoryID,
			&m.ProductCode,
			&m.ProductName,
			&m.PreviousStock,
			&m.AddedStock,
			&m.NewStock,
			&m.SupplierName,
			&m.BatchNumber,
			&m.ManufactureDate,
			&m.ExpiryDate,
			&m.MRP,
			&m.SellerPrice,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock history entry", err)
		}
		history = append(history, mapping.ToDomainStockHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock history", err)
	}

	return history, nil
}
