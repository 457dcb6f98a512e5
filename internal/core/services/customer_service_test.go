package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/core/services"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByContact(ctx context.Context, contact string) (*domain.Customer, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateOutstandingCredit(ctx context.Context, customerID int64, outstandingCredit decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, customerID, outstandingCredit, updatedAt)
	return args.Error(0)
}

type CustomerServiceTestSuite struct {
	suite.Suite
	customerRepo *MockCustomerRepository
	billRepo     *MockBillRepository
	service      portssvc.CustomerSvcFacade
	ctx          context.Context
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.customerRepo = new(MockCustomerRepository)
	s.billRepo = new(MockBillRepository)
	s.service = services.NewCustomerService(s.customerRepo, s.billRepo)
	s.ctx = context.Background()
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	req := dto.CreateCustomerRequest{
		Name:       "Asha",
		Contact:    "9876543210",
		NationalID: "123456789012",
		Location:   "Main Street",
	}

	s.customerRepo.On("FindCustomerByContact", s.ctx, "9876543210").Return(nil, apperrors.ErrNotFound)
	s.customerRepo.On("CreateCustomer", s.ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Asha" && c.Contact == "9876543210" && c.OutstandingCredit.IsZero()
	})).Return(&domain.Customer{ID: 1000, Name: "Asha", Contact: "9876543210"}, nil)

	customer, err := s.service.CreateCustomer(s.ctx, req)

	s.Require().NoError(err)
	assert.Equal(s.T(), int64(1000), customer.ID)
	s.customerRepo.AssertExpectations(s.T())
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_DuplicateContactReturnsExisting() {
	existing := &domain.Customer{ID: 1001, Name: "Asha", Contact: "9876543210"}
	s.customerRepo.On("FindCustomerByContact", s.ctx, "9876543210").Return(existing, nil)

	customer, err := s.service.CreateCustomer(s.ctx, dto.CreateCustomerRequest{
		Name:    "Asha Again",
		Contact: "9876543210",
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
	// The existing record comes back alongside the error.
	s.Require().NotNil(customer)
	assert.Equal(s.T(), int64(1001), customer.ID)
	s.customerRepo.AssertNotCalled(s.T(), "CreateCustomer", mock.Anything, mock.Anything)
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_NationalIDMustBeEmptyOrTwelveDigits() {
	_, err := s.service.CreateCustomer(s.ctx, dto.CreateCustomerRequest{
		Name:       "Asha",
		Contact:    "9876543210",
		NationalID: "12345",
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.customerRepo.AssertNotCalled(s.T(), "FindCustomerByContact", mock.Anything, mock.Anything)
}

func (s *CustomerServiceTestSuite) TestResyncOutstandingCredit_WritesRecomputedTotal() {
	total := decimal.NewFromInt(75)
	s.billRepo.On("SumOutstandingByCustomer", s.ctx, int64(1001)).Return(total, nil)
	s.customerRepo.On("UpdateOutstandingCredit", s.ctx, int64(1001), decEqual(total), mock.AnythingOfType("time.Time")).Return(nil)

	got, err := s.service.ResyncOutstandingCredit(s.ctx, 1001)

	s.Require().NoError(err)
	assert.True(s.T(), got.Equal(total))
	s.customerRepo.AssertExpectations(s.T())
}

func (s *CustomerServiceTestSuite) TestResyncOutstandingCredit_IsIdempotent() {
	total := decimal.NewFromInt(75)
	s.billRepo.On("SumOutstandingByCustomer", s.ctx, int64(1001)).Return(total, nil).Twice()
	s.customerRepo.On("UpdateOutstandingCredit", s.ctx, int64(1001), decEqual(total), mock.AnythingOfType("time.Time")).Return(nil).Twice()

	first, err := s.service.ResyncOutstandingCredit(s.ctx, 1001)
	s.Require().NoError(err)
	second, err := s.service.ResyncOutstandingCredit(s.ctx, 1001)
	s.Require().NoError(err)

	// Re-running converges on the same total.
	assert.True(s.T(), first.Equal(second))
	s.billRepo.AssertExpectations(s.T())
}
