package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/srimart/retail_billing_app/internal/apperrors"
	"github.com/srimart/retail_billing_app/internal/core/domain"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/core/services"
	"github.com/srimart/retail_billing_app/internal/dto"
)

type StockServiceTestSuite struct {
	suite.Suite
	stockRepo *MockStockRepository
	service   portssvc.StockSvcFacade
	ctx       context.Context
}

func (s *StockServiceTestSuite) SetupTest() {
	s.stockRepo = new(MockStockRepository)
	s.service = services.NewStockService(s.stockRepo)
	s.ctx = context.Background()
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}

func (s *StockServiceTestSuite) TestRestock_RecordsHistoryWithPreviousStock() {
	req := dto.RestockRequest{
		ProductCode:  "RICE-01",
		ProductName:  "Rice",
		Quantity:     decimal.NewFromInt(10),
		SupplierName: "AgroSupply",
	}

	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(riceLedger(5), nil)
	s.stockRepo.On("IncrementStock", s.ctx, "RICE-01", "Rice", decEqual(decimal.NewFromInt(10)), decEqual(decimal.Zero)).
		Return(riceLedger(15), nil)
	s.stockRepo.On("SaveStockHistory", s.ctx, mock.MatchedBy(func(h domain.StockHistory) bool {
		return h.ProductCode == "RICE-01" &&
			h.PreviousStock.Equal(decimal.NewFromInt(5)) &&
			h.AddedStock.Equal(decimal.NewFromInt(10)) &&
			h.NewStock.Equal(decimal.NewFromInt(15)) &&
			h.SupplierName == "AgroSupply" &&
			h.HistoryID != ""
	})).Return(nil)

	entry, err := s.service.Restock(s.ctx, req)

	s.Require().NoError(err)
	assert.True(s.T(), entry.AvailableQuantity.Equal(decimal.NewFromInt(15)))
	s.stockRepo.AssertExpectations(s.T())
}

func (s *StockServiceTestSuite) TestRestock_FirstRestockCreatesLedgerEntry() {
	req := dto.RestockRequest{
		ProductCode: "SALT-01",
		ProductName: "Salt",
		Quantity:    decimal.NewFromInt(20),
	}

	s.stockRepo.On("FindStockByProductCode", s.ctx, "SALT-01").Return(nil, apperrors.ErrNotFound)
	s.stockRepo.On("IncrementStock", s.ctx, "SALT-01", "Salt", decEqual(decimal.NewFromInt(20)), decEqual(decimal.Zero)).
		Return(&domain.StockLedgerEntry{
			ProductCode:       "SALT-01",
			ProductName:       "Salt",
			TotalQuantity:     decimal.NewFromInt(20),
			AvailableQuantity: decimal.NewFromInt(20),
		}, nil)
	s.stockRepo.On("SaveStockHistory", s.ctx, mock.MatchedBy(func(h domain.StockHistory) bool {
		return h.PreviousStock.IsZero() && h.NewStock.Equal(decimal.NewFromInt(20))
	})).Return(nil)

	entry, err := s.service.Restock(s.ctx, req)

	s.Require().NoError(err)
	assert.True(s.T(), entry.AvailableQuantity.Equal(decimal.NewFromInt(20)))
}

func (s *StockServiceTestSuite) TestRestock_NonPositiveQuantity_Fails() {
	_, err := s.service.Restock(s.ctx, dto.RestockRequest{
		ProductCode: "RICE-01",
		Quantity:    decimal.NewFromInt(-1),
	})

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.stockRepo.AssertNotCalled(s.T(), "IncrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *StockServiceTestSuite) TestReduceStock_InsufficientBalancePropagates() {
	s.stockRepo.On("DeductStock", s.ctx, "RICE-01", decEqual(decimal.NewFromInt(10))).
		Return(nil, apperrors.ErrInsufficientStock)

	_, err := s.service.ReduceStock(s.ctx, "RICE-01", decimal.NewFromInt(10))

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrInsufficientStock)
}

func (s *StockServiceTestSuite) TestReduceStock_NonPositiveQuantity_Fails() {
	_, err := s.service.ReduceStock(s.ctx, "RICE-01", decimal.Zero)

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
	s.stockRepo.AssertNotCalled(s.T(), "DeductStock", mock.Anything, mock.Anything, mock.Anything)
}

func (s *StockServiceTestSuite) TestIsLowStock() {
	entry := riceLedger(2)
	entry.LowStockAlert = decimal.NewFromInt(5)
	s.stockRepo.On("FindStockByProductCode", s.ctx, "RICE-01").Return(entry, nil)

	low, err := s.service.IsLowStock(s.ctx, "RICE-01")

	s.Require().NoError(err)
	assert.True(s.T(), low)
}
