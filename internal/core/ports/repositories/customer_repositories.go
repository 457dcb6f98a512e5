package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
)

// CustomerReader defines read operations for the customer directory.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by their numeric id.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// FindCustomerByContact retrieves a customer by their unique contact number.
	FindCustomerByContact(ctx context.Context, contact string) (*domain.Customer, error)
}

// CustomerWriter defines write operations for the customer directory.
type CustomerWriter interface {
	// CreateCustomer inserts a new customer, assigning the next sequential
	// id, and returns the stored record. A duplicate contact is
	// apperrors.ErrDuplicate.
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// UpdateOutstandingCredit writes the recomputed outstanding credit total.
	UpdateOutstandingCredit(ctx context.Context, customerID int64, outstandingCredit decimal.Decimal, updatedAt time.Time) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
