package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/srimart/retail_billing_app/internal/core/domain"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// CustomerReaderSvc defines read operations for the customer directory.
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by their numeric id.
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// GetCustomerByContact retrieves a customer by contact number.
	GetCustomerByContact(ctx context.Context, contact string) (*domain.Customer, error)
}

// CustomerWriterSvc defines write operations for the customer directory.
type CustomerWriterSvc interface {
	// CreateCustomer registers a new customer with the next sequential id.
	// If the contact already exists the existing customer is returned
	// together with apperrors.ErrDuplicate.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// CustomerCreditSvc recomputes a customer's cached outstanding credit.
type CustomerCreditSvc interface {
	// ResyncOutstandingCredit recomputes outstanding credit as the sum of
	// unpaid balances across the customer's bills and stores it. Idempotent.
	ResyncOutstandingCredit(ctx context.Context, customerID int64) (decimal.Decimal, error)
}

// CustomerSvcFacade combines all customer service interfaces.
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
	CustomerCreditSvc
}
