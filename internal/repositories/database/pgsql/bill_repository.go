package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	"github.com/srimart/retail_billing_app/internal/models"
	"github.com/srimart/retail_billing_app/internal/utils/mapping"
)

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for bill data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `
	bill_id, bill_number, customer_id, customer_name, customer_contact,
	customer_national_id, customer_location, product_subtotal, product_gst,
	current_bill_total, previous_outstanding_credit, grand_total, paid_amount,
	unpaid_amount, status, payment_method, transaction_id, bill_date,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveBill persists a bill and its line items in one transaction so a partial
// write can never surface as a bill without items.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	items := mapping.ToModelBillItems(bill.BillID, bill.Items)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	billQuery := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = tx.Exec(ctx, billQuery,
		m.BillID,
		m.BillNumber,
		m.CustomerID,
		m.CustomerName,
		m.CustomerContact,
		m.CustomerNationalID,
		m.CustomerLocation,
		m.ProductSubtotal,
		m.ProductGST,
		m.CurrentBillTotal,
		m.PreviousOutstandingCredit,
		m.GrandTotal,
		m.PaidAmount,
		m.UnpaidAmount,
		m.Status,
		m.PaymentMethod,
		m.TransactionID,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: bill number %s already exists", apperrors.ErrDuplicate, m.BillNumber)
		}
		return apperrors.NewAppError(500, "failed to save bill "+m.BillNumber, err)
	}

	itemQuery := `
		INSERT INTO bill_items (bill_id, line_no, item_name, price, quantity, unit, gst, mrp, discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.BillID,
			item.LineNo,
			item.Name,
			item.Price,
			item.Quantity,
			item.Unit,
			item.GST,
			item.MRP,
			item.Discount,
		); err != nil {
			return apperrors.NewAppError(500, "failed to save bill item for bill "+m.BillNumber, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindBillByID retrieves a bill with its line items.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`

	m, err := r.scanBillRow(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bill "+billID, err)
	}

	items, err := r.findItems(ctx, billID)
	if err != nil {
		return nil, err
	}

	bill := mapping.ToDomainBill(*m, items)
	return &bill, nil
}

// FindUnpaidBillsByCustomer retrieves the customer's bills with a positive
// unpaid balance, oldest first so settlement consumes them in order.
func (r *PgxBillRepository) FindUnpaidBillsByCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE customer_id = $1 AND unpaid_amount > 0 ORDER BY bill_date ASC;`
	return r.queryBills(ctx, query, customerID)
}

// FindOutstandingBillsByIDs retrieves the subset of the given bills that still
// carry a positive unpaid balance, oldest first.
func (r *PgxBillRepository) FindOutstandingBillsByIDs(ctx context.Context, billIDs []string) ([]domain.Bill, error) {
	if len(billIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = ANY($1) AND unpaid_amount > 0 ORDER BY bill_date ASC;`
	return r.queryBills(ctx, query, billIDs)
}

// SumOutstandingByCustomer sums the unpaid balance across the customer's
// bills with a positive balance.
func (r *PgxBillRepository) SumOutstandingByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(unpaid_amount), 0) FROM bills WHERE customer_id = $1 AND unpaid_amount > 0;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, customerID).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum outstanding credit", err)
	}
	return total, nil
}

// ListSoldItems retrieves every line item ever billed, projected to the
// fields the stock summary needs.
func (r *PgxBillRepository) ListSoldItems(ctx context.Context) ([]domain.SoldItem, error) {
	query := `SELECT item_name, quantity, unit FROM bill_items;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sold items", err)
	}
	defer rows.Close()

	var items []domain.SoldItem
	for rows.Next() {
		var item domain.SoldItem
		if err := rows.Scan(&item.ProductName, &item.Quantity, &item.Unit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sold item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sold items", err)
	}

	return items, nil
}

// UpdateBillPayment updates the payment-state fields of an existing bill.
func (r *PgxBillRepository) UpdateBillPayment(ctx context.Context, bill domain.Bill) error {
	query := `
		UPDATE bills SET
			paid_amount     = $2,
			unpaid_amount   = $3,
			status          = $4,
			payment_method  = $5,
			transaction_id  = $6,
			last_updated_at = $7
		WHERE bill_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		bill.BillID,
		bill.PaidAmount,
		bill.UnpaidAmount,
		string(bill.Status),
		bill.PaymentMethod,
		bill.TransactionID,
		time.Now().UTC(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment for bill "+bill.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, bill.BillID)
	}
	return nil
}

func (r *PgxBillRepository) queryBills(ctx context.Context, query string, args ...any) ([]domain.Bill, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bills", err)
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		m, err := r.scanBillRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill", err)
		}
		bills = append(bills, mapping.ToDomainBill(*m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bills", err)
	}

	// Settlement and listings need the line items too.
	for i := range bills {
		items, err := r.findItems(ctx, bills[i].BillID)
		if err != nil {
			return nil, err
		}
		bills[i].Items = mapping.ToDomainBillItems(items)
	}

	return bills, nil
}

func (r *PgxBillRepository) scanBillRow(row pgx.Row) (*models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.BillNumber,
		&m.CustomerID,
		&m.CustomerName,
		&m.CustomerContact,
		&m.CustomerNationalID,
		&m.CustomerLocation,
		&m.ProductSubtotal,
		&m.ProductGST,
		&m.CurrentBillTotal,
		&m.PreviousOutstandingCredit,
		&m.GrandTotal,
		&m.PaidAmount,
		&m.UnpaidAmount,
		&m.Status,
		&m.PaymentMethod,
		&m.TransactionID,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBillRepository) findItems(ctx context.Context, billID string) ([]models.BillItem, error) {
	query := `
		SELECT bill_id, line_no, item_name, price, quantity, unit, gst, mrp, discount
		FROM bill_items WHERE bill_id = $1 ORDER BY line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bill items for bill "+billID, err)
	}
	defer rows.Close()

	var items []models.BillItem
	for rows.Next() {
		var item models.BillItem
		if err := rows.Scan(
			&item.BillID,
			&item.LineNo,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Unit,
			&item.GST,
			&item.MRP,
			&item.Discount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bill item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bill items", err)
	}

	return items, nil
}
