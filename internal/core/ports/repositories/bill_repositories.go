package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// BillReader defines read operations for bill data.
type BillReader interface {
	// FindBillByID retrieves a bill (with its line items) by id.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindUnpaidBillsByCustomer retrieves a customer's bills with a positive
	// unpaid balance, oldest first.
	FindUnpaidBillsByCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error)

	// FindOutstandingBillsByIDs retrieves the subset of the given bills that
	// still have a positive unpaid balance, ordered by bill date ascending.
	FindOutstandingBillsByIDs(ctx context.Context, billIDs []string) ([]domain.Bill, error)

	// SumOutstandingByCustomer sums the unpaid balance across all of the
	// customer's bills with a positive balance.
	SumOutstandingByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error)

	// ListSoldItems retrieves every line item ever billed, projected to the
	// fields the stock summary needs.
	ListSoldItems(ctx context.Context) ([]domain.SoldItem, error)
}

// BillWriter defines write operations for bill data.
type BillWriter interface {
	// SaveBill persists a bill and its line items in one database
	// transaction. A duplicate bill number is apperrors.ErrDuplicate.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBillPayment updates the payment-state fields of an existing bill
	// (paid amount, unpaid balance, status, payment method, transaction id).
	UpdateBillPayment(ctx context.Context, bill domain.Bill) error
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
	TransactionManager
}
