package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindUnpaidBillsByCustomer(ctx context.Context, customerID int64) ([]domain.Bill, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindOutstandingBillsByIDs(ctx context.Context, billIDs []string) ([]domain.Bill, error) {
	args := m.Called(ctx, billIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) SumOutstandingByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBillRepository) ListSoldItems(ctx context.Context) ([]domain.SoldItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SoldItem), args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBillPayment(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockBillRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBillRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ProductReader ---
type MockProductReader struct {
	mock.Mock
}

var _ portsrepo.ProductReader = (*MockProductReader)(nil)

func (m *MockProductReader) FindProductByCode(ctx context.Context, productCode string) (*domain.Product, error) {
	args := m.Called(ctx, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) FindProductByName(ctx context.Context, productName string) (*domain.Product, error) {
	args := m.Called(ctx, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

var _ portsrepo.StockRepositoryFacade = (*MockStockRepository)(nil)

func (m *MockStockRepository) FindStockByProductCode(ctx context.Context, productCode string) (*domain.StockLedgerEntry, error) {
	args := m.Called(ctx, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLedgerEntry), args.Error(1)
}

func (m *MockStockRepository) ListStock(ctx context.Context) ([]domain.StockLedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLedgerEntry), args.Error(1)
}

func (m *MockStockRepository) ListStockHistory(ctx context.Context, filter portsrepo.StockHistoryFilter) ([]domain.StockHistory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockHistory), args.Error(1)
}

func (m *MockStockRepository) IncrementStock(ctx context.Context, productCode, productName string, quantity, lowStockAlert decimal.Decimal) (*domain.StockLedgerEntry, error) {
	args := m.Called(ctx, productCode, productName, quantity, lowStockAlert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLedgerEntry), args.Error(1)
}

func (m *MockStockRepository) DeductStock(ctx context.Context, productCode string, quantity decimal.Decimal) (*domain.StockLedgerEntry, error) {
	args := m.Called(ctx, productCode, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLedgerEntry), args.Error(1)
}

func (m *MockStockRepository) SaveStockHistory(ctx context.Context, history domain.StockHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

// --- Mock CustomerCreditSvc ---
type MockCreditService struct {
	mock.Mock
}

var _ portssvc.CustomerCreditSvc = (*MockCreditService)(nil)

func (m *MockCreditService) ResyncOutstandingCredit(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type BillingServiceTestSuite struct {
	suite.Suite
	billRepo    *MockBillRepository
	productRepo *MockProductReader
	stockRepo   *MockStockRepository
	creditSvc   *MockCreditService
	service     portssvc.BillingSvcFacade
	ctx         context.Context
}

func (s *BillingServiceTestSuite) SetupTest() {
	s.billRepo = new(MockBillRepository)
	s.productRepo = new(MockProductReader)
	s.stockRepo = new(MockStockRepository)
	s.creditSvc = new(MockCreditService)
	s.service = services.NewBillingService(s.billRepo, s.productRepo, s.stockRepo, s.creditSvc)
	s.ctx = context.Background()
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}

func decEqual(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

func riceProduct() *domain.Product {
	return &domain.Product{
		ProductCode:    "RICE-01",
		ProductName:    "Rice",
		BaseUnit:       "kg",
		SecondaryUnit:  "gram",
		ConversionRate: decimal.NewFromInt(1000),
		BasePrice:      decimal.NewFromInt(80),
		MRP:            decimal.NewFromInt(80),
		GSTCategory:    domain.NonGST,
	}
}

func riceLedger(availableKg int64) *domain.StockLedgerEntry {
	return &domain.StockLedgerEntry{
		ProductCode:       "RICE-01",
		ProductName:       "Rice",
		TotalQuantity:     decimal.NewFromInt(availableKg),
		AvailableQuantity: decimal.NewFromInt(availableKg),
		UpdatedAt:         time.Now().UTC(),
	}
}

func baseBillRequest() dto.CreateBillRequest {
	return dto.CreateBillRequest{
		Customer: dto.BillCustomer{
			ID:      1001,
			Name:    "Asha",
			Contact: "9876543210",
		},
		Products: []dto.BillItemRequest{
			{
				Name:     "Rice",
				Price:    decimal.NewFromInt(160),
				Quantity: decimal.NewFromInt(2000),
				Unit:     "gram",
			},
		},
		ProductSubtotal: decimal.NewFromInt(160),
		ProductGST:      decimal.Zero,
		Payment: dto.BillPayment{
			CurrentBillPayment: decimal.NewFromInt(160),
			Method:             "cash",
		},
		BillNumber: "BILL-1001",
	}
}

func (s *BillingServiceTestSuite) TestCreateBill_Success_DeductsConvertedQuantity() {
	req := baseBillRequest()

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(5), nil)
	s.billRepo.On("SaveBill", s.ctx, mock.AnythingOfType("domain.Bill")).Return(nil)
	// 2000 grams at rate 1000 deducts 2 kg from the ledger.
	s.stockRepo.On("DeductStock", s.ctx, "RICE-01", decEqual(decimal.NewFromInt(2))).Return(riceLedger(3), nil)
	s.creditSvc.On("ResyncOutstandingCredit", s.ctx, int64(1001)).Return(decimal.Zero, nil)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	assert.Equal(s.T(), domain.StatusPaid, resp.Bill.Status)
	assert.True(s.T(), resp.Bill.UnpaidAmount.IsZero())
	assert.True(s.T(), resp.Bill.GrandTotal.Equal(decimal.NewFromInt(160)))
	s.stockRepo.AssertExpectations(s.T())
	s.billRepo.AssertExpectations(s.T())
	s.creditSvc.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestCreateBill_InsufficientStock_AbortsBeforeAnyWrite() {
	req := baseBillRequest()

	// Only 1 kg available, 2000 grams requested.
	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(1), nil)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrInsufficientStock)
	// The shortfall is reported in the requested display unit.
	assert.Contains(s.T(), err.Error(), "1000.00 gram")
	assert.Contains(s.T(), err.Error(), "Rice")
	s.billRepo.AssertNotCalled(s.T(), "SaveBill", mock.Anything, mock.Anything)
	s.stockRepo.AssertNotCalled(s.T(), "DeductStock", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestCreateBill_UnknownProduct_Fails() {
	req := baseBillRequest()

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(nil, apperrors.ErrNotFound)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	s.billRepo.AssertNotCalled(s.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestCreateBill_MissingLedgerEntry_TreatedAsZeroStock() {
	req := baseBillRequest()

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(nil, apperrors.ErrNotFound)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrInsufficientStock)
}

func (s *BillingServiceTestSuite) TestCreateBill_UnpaidBill_SkipsStockDeduction() {
	req := baseBillRequest()
	req.Payment.CurrentBillPayment = decimal.Zero

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(5), nil)
	s.billRepo.On("SaveBill", s.ctx, mock.AnythingOfType("domain.Bill")).Return(nil)
	s.creditSvc.On("ResyncOutstandingCredit", s.ctx, int64(1001)).Return(decimal.NewFromInt(160), nil)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().NoError(err)
	assert.Equal(s.T(), domain.StatusUnpaid, resp.Bill.Status)
	assert.True(s.T(), resp.Bill.UnpaidAmount.Equal(decimal.NewFromInt(160)))
	s.stockRepo.AssertNotCalled(s.T(), "DeductStock", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestCreateBill_PartialPayment() {
	req := baseBillRequest()
	req.Payment.CurrentBillPayment = decimal.NewFromInt(100)

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(5), nil)
	s.billRepo.On("SaveBill", s.ctx, mock.AnythingOfType("domain.Bill")).Return(nil)
	s.stockRepo.On("DeductStock", s.ctx, "RICE-01", decEqual(decimal.NewFromInt(2))).Return(riceLedger(3), nil)
	s.creditSvc.On("ResyncOutstandingCredit", s.ctx, int64(1001)).Return(decimal.NewFromInt(60), nil)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().NoError(err)
	assert.Equal(s.T(), domain.StatusPartial, resp.Bill.Status)
	assert.True(s.T(), resp.Bill.UnpaidAmount.Equal(decimal.NewFromInt(60)))
	s.stockRepo.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestCreateBill_DuplicateBillNumber_ReturnsConflict() {
	req := baseBillRequest()

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(5), nil)
	s.billRepo.On("SaveBill", s.ctx, mock.AnythingOfType("domain.Bill")).Return(apperrors.ErrDuplicate)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
	s.stockRepo.AssertNotCalled(s.T(), "DeductStock", mock.Anything, mock.Anything, mock.Anything)
	s.creditSvc.AssertNotCalled(s.T(), "ResyncOutstandingCredit", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestCreateBill_SettlesSelectedOutstandingOldestFirst() {
	req := baseBillRequest()
	req.Payment.SelectedOutstandingPayment = decimal.NewFromInt(60)
	req.SelectedUnpaidBillIDs = []string{"B1", "B2"}

	older := domain.Bill{
		BillID:       "B1",
		GrandTotal:   decimal.NewFromInt(50),
		PaidAmount:   decimal.Zero,
		UnpaidAmount: decimal.NewFromInt(50),
		Status:       domain.StatusUnpaid,
		Date:         time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	newer := domain.Bill{
		BillID:       "B2",
		GrandTotal:   decimal.NewFromInt(30),
		PaidAmount:   decimal.Zero,
		UnpaidAmount: decimal.NewFromInt(30),
		Status:       domain.StatusUnpaid,
		Date:         time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	}

	s.productRepo.On("FindProductByName", s.ctx, "Rice").Return(riceProduct(), nil)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(5), nil)
	s.billRepo.On("SaveBill", s.ctx, mock.AnythingOfType("domain.Bill")).Return(nil)
	s.stockRepo.On("DeductStock", s.ctx, "RICE-01", decEqual(decimal.NewFromInt(2))).Return(riceLedger(3), nil)
	s.billRepo.On("FindOutstandingBillsByIDs", s.ctx, []string{"B1", "B2"}).Return([]domain.Bill{older, newer}, nil)
	s.billRepo.On("UpdateBillPayment", s.ctx, mock.AnythingOfType("domain.Bill")).Return(nil).Twice()
	s.creditSvc.On("ResyncOutstandingCredit", s.ctx, int64(1001)).Return(decimal.NewFromInt(20), nil)

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().NoError(err)
	s.Require().Len(resp.SettledOutstandingBills, 2)
	// Oldest bill fully settled, the newer one absorbs the rest.
	assert.Equal(s.T(), domain.StatusPaid, resp.SettledOutstandingBills[0].Status)
	assert.True(s.T(), resp.SettledOutstandingBills[0].UnpaidAmount.IsZero())
	assert.Equal(s.T(), domain.StatusPartial, resp.SettledOutstandingBills[1].Status)
	assert.True(s.T(), resp.SettledOutstandingBills[1].UnpaidAmount.Equal(decimal.NewFromInt(20)))
	assert.True(s.T(), resp.RemainingPayment.IsZero())
	s.billRepo.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestCreateBill_InvalidNationalID_Fails() {
	req := baseBillRequest()
	req.Customer.NationalID = "12345"

	resp, err := s.service.CreateBill(s.ctx, req)

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.productRepo.AssertNotCalled(s.T(), "FindProductByName", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestSettleOutstanding_OverpaymentReturnsRemainder() {
	bill := domain.Bill{
		BillID:       "B1",
		GrandTotal:   decimal.NewFromInt(25),
		PaidAmount:   decimal.Zero,
		UnpaidAmount: decimal.NewFromInt(25),
		Status:       domain.StatusUnpaid,
	}

	s.billRepo.On("FindOutstandingBillsByIDs", s.ctx, []string{"B1"}).Return([]domain.Bill{bill}, nil)
	s.billRepo.On("UpdateBillPayment", s.ctx, mock.AnythingOfType("domain.Bill")).Return(nil).Once()
	s.creditSvc.On("ResyncOutstandingCredit", s.ctx, int64(1001)).Return(decimal.Zero, nil)

	resp, err := s.service.SettleOutstanding(s.ctx, dto.SettleOutstandingRequest{
		CustomerID:            1001,
		AmountPaid:            decimal.NewFromInt(40),
		SelectedUnpaidBillIDs: []string{"B1"},
		PaymentMethod:         "upi",
	})

	s.Require().NoError(err)
	s.Require().Len(resp.UpdatedBills, 1)
	assert.Equal(s.T(), domain.StatusPaid, resp.UpdatedBills[0].Status)
	assert.True(s.T(), resp.RemainingPayment.Equal(decimal.NewFromInt(15)))
	s.billRepo.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) TestSettleOutstanding_NoOutstandingBills_NotFound() {
	s.billRepo.On("FindOutstandingBillsByIDs", s.ctx, []string{"B9"}).Return([]domain.Bill{}, nil)

	resp, err := s.service.SettleOutstanding(s.ctx, dto.SettleOutstandingRequest{
		CustomerID:            1001,
		AmountPaid:            decimal.NewFromInt(10),
		SelectedUnpaidBillIDs: []string{"B9"},
		PaymentMethod:         "cash",
	})

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *BillingServiceTestSuite) TestSettleOutstanding_NonPositiveAmount_Fails() {
	resp, err := s.service.SettleOutstanding(s.ctx, dto.SettleOutstandingRequest{
		CustomerID:            1001,
		AmountPaid:            decimal.Zero,
		SelectedUnpaidBillIDs: []string{"B1"},
		PaymentMethod:         "cash",
	})

	s.Require().Error(err)
	assert.Nil(s.T(), resp)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.billRepo.AssertNotCalled(s.T(), "FindOutstandingBillsByIDs", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestListUnpaidBills_DelegatesToRepo() {
	expected := []domain.Bill{{BillID: "B1"}}
	s.billRepo.On("FindUnpaidBillsByCustomer", s.ctx, int64(1001)).Return(expected, nil)

	bills, err := s.service.ListUnpaidBills(s.ctx, 1001)

	s.Require().NoError(err)
	assert.Equal(s.T(), expected, bills)
}
