package services

import (
	"context"
	"errors"
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

// customerService provides customer directory operations and the credit
// aggregator that keeps the cached outstanding total consistent with the
// bill set.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	billRepo     portsrepo.BillReader
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, billRepo portsrepo.BillReader) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		billRepo:     billRepo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer registers a new customer. If the contact already exists the
// existing record is returned together with ErrDuplicate so callers can
// report the conflict without losing the match.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := domain.ValidateNationalID(req.NationalID); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	existing, err := s.customerRepo.FindCustomerByContact(ctx, req.Contact)
	if err == nil {
		return existing, fmt.Errorf("%w: customer with contact %s already exists", apperrors.ErrDuplicate, req.Contact)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	customer, err := s.customerRepo.CreateCustomer(ctx, domain.Customer{
		Name:              req.Name,
		Contact:           req.Contact,
		NationalID:        req.NationalID,
		Location:          req.Location,
		OutstandingCredit: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer", slog.String("contact", req.Contact))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) GetCustomerByContact(ctx context.Context, contact string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByContact(ctx, contact)
}

// ResyncOutstandingCredit recomputes the customer's outstanding credit as
// the sum of unpaid balances across all their bills with a positive balance
// and writes it back. A full recomputation rather than an increment, so a
// redundant or repeated call always converges on the true total.
func (s *customerService) ResyncOutstandingCredit(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	total, err := s.billRepo.SumOutstandingByCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.customerRepo.UpdateOutstandingCredit(ctx, customerID, total, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update outstanding credit", slog.Int64("customer_id", customerID))
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Outstanding credit resynced",
		slog.Int64("customer_id", customerID),
		slog.String("outstanding_credit", total.String()))
	return total, nil
}
