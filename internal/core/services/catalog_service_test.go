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
	portsrepo "github.com/srimart/retail_billing_app/internal/core/ports/repositories"
	portssvc "github.com/srimart/retail_billing_app/internal/core/ports/services"
	"github.com/srimart/retail_billing_app/internal/core/services"
	"github.com/srimart/retail_billing_app/internal/dto"
)

// --- Mock ProductRepository (full facade) ---
type MockProductRepository struct {
	MockProductReader
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

type CatalogServiceTestSuite struct {
	suite.Suite
	productRepo *MockProductRepository
	stockRepo   *MockStockRepository
	service     portssvc.CatalogSvcFacade
	ctx         context.Context
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.productRepo = new(MockProductRepository)
	s.stockRepo = new(MockStockRepository)
	s.service = services.NewCatalogService(s.productRepo, s.stockRepo)
	s.ctx = context.Background()
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) TestCreateProduct_DerivesPricesAndSeedsLedger() {
	req := dto.CreateProductRequest{
		ProductName:    "Rice",
		ProductCode:    "RICE-01",
		BaseUnit:       "kg",
		SecondaryUnit:  "gram",
		ConversionRate: decimal.NewFromInt(1000),
		MRP:            decimal.NewFromInt(80),
		GSTCategory:    "Non-GST",
		StockQuantity:  decimal.NewFromInt(50),
		LowStockAlert:  decimal.NewFromInt(5),
	}

	s.productRepo.On("SaveProduct", s.ctx, mock.MatchedBy(func(p domain.Product) bool {
		// Base price defaults to MRP; secondary price is per secondary unit.
		return p.BasePrice.Equal(decimal.NewFromInt(80)) &&
			p.SecondaryPrice.Equal(decimal.NewFromFloat(0.08)) &&
			p.ConversionRate.Equal(decimal.NewFromInt(1000))
	})).Return(nil)
	s.stockRepo.On("IncrementStock", s.ctx, "RICE-01", "Rice", decEqual(decimal.NewFromInt(50)), decEqual(decimal.NewFromInt(5))).
		Return(riceLedger(50), nil)

	product, err := s.service.CreateProduct(s.ctx, req)

	s.Require().NoError(err)
	assert.Equal(s.T(), "RICE-01", product.ProductCode)
	s.productRepo.AssertExpectations(s.T())
	s.stockRepo.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateProduct_ZeroStockSkipsLedger() {
	req := dto.CreateProductRequest{
		ProductName: "Salt",
		ProductCode: "SALT-01",
		BaseUnit:    "kg",
		MRP:         decimal.NewFromInt(20),
		GSTCategory: "Non-GST",
	}

	s.productRepo.On("SaveProduct", s.ctx, mock.AnythingOfType("domain.Product")).Return(nil)

	_, err := s.service.CreateProduct(s.ctx, req)

	s.Require().NoError(err)
	s.stockRepo.AssertNotCalled(s.T(), "IncrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestCreateProduct_DuplicateCodePropagates() {
	req := dto.CreateProductRequest{
		ProductName: "Rice",
		ProductCode: "RICE-01",
		BaseUnit:    "kg",
		MRP:         decimal.NewFromInt(80),
		GSTCategory: "Non-GST",
	}

	s.productRepo.On("SaveProduct", s.ctx, mock.AnythingOfType("domain.Product")).Return(apperrors.ErrDuplicate)

	_, err := s.service.CreateProduct(s.ctx, req)

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
}

func (s *CatalogServiceTestSuite) TestCalculatePrice_BaseUnit() {
	s.productRepo.On("FindProductByCode", s.ctx, "RICE-01").Return(riceProduct(), nil)

	price, err := s.service.CalculatePrice(s.ctx, "RICE-01", "kg", decimal.NewFromInt(3))

	s.Require().NoError(err)
	assert.True(s.T(), price.Equal(decimal.NewFromInt(240)))
}

func (s *CatalogServiceTestSuite) TestCalculatePrice_SecondaryUnit() {
	p := riceProduct()
	p.SecondaryPrice = decimal.NewFromFloat(0.08)
	s.productRepo.On("FindProductByCode", s.ctx, "RICE-01").Return(p, nil)

	price, err := s.service.CalculatePrice(s.ctx, "RICE-01", "gram", decimal.NewFromInt(500))

	s.Require().NoError(err)
	assert.True(s.T(), price.Equal(decimal.NewFromInt(40)))
}

func (s *CatalogServiceTestSuite) TestCalculatePrice_GramFallbackWhenNoSecondaryUnit() {
	p := riceProduct()
	p.SecondaryUnit = ""
	p.SecondaryPrice = decimal.Zero
	s.productRepo.On("FindProductByCode", s.ctx, "RICE-01").Return(p, nil)

	// No configured gram price; kg base price divides by 1000.
	price, err := s.service.CalculatePrice(s.ctx, "RICE-01", "gram", decimal.NewFromInt(500))

	s.Require().NoError(err)
	assert.True(s.T(), price.Equal(decimal.NewFromInt(40)))
}

func (s *CatalogServiceTestSuite) TestCalculatePrice_UnknownUnit_Fails() {
	s.productRepo.On("FindProductByCode", s.ctx, "RICE-01").Return(riceProduct(), nil)

	_, err := s.service.CalculatePrice(s.ctx, "RICE-01", "dozen", decimal.NewFromInt(1))

	s.Require().Error(err)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}
