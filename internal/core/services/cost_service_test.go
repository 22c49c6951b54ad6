package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/core/services"
	"github.com/fegundez/maqtrack/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// errStoreDown simulates an unreachable record store in degrade-tier tests.
var errStoreDown = errors.New("connection refused")

// --- Mock CostItemRepository ---
type MockCostItemRepository struct {
	mock.Mock
}

func (m *MockCostItemRepository) FindCostItemByID(ctx context.Context, costItemID string) (*domain.CostItem, error) {
	args := m.Called(ctx, costItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostItem), args.Error(1)
}

func (m *MockCostItemRepository) ListCostItemsByPurchase(ctx context.Context, purchaseID string) ([]domain.CostItem, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostItem), args.Error(1)
}

func (m *MockCostItemRepository) SaveCostItem(ctx context.Context, item domain.CostItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCostItemRepository) DeleteCostItem(ctx context.Context, costItemID string) error {
	args := m.Called(ctx, costItemID)
	return args.Error(0)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, page, pageSize int) ([]domain.Purchase, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Purchase), args.Int(1), args.Error(2)
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

// --- Test Suite ---
type CostServiceTestSuite struct {
	suite.Suite
	mockCostRepo     *MockCostItemRepository
	mockPurchaseRepo *MockPurchaseRepository
	service          portssvc.CostSvcFacade
}

func (suite *CostServiceTestSuite) SetupTest() {
	suite.mockCostRepo = new(MockCostItemRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewCostService(suite.mockCostRepo, suite.mockPurchaseRepo)
}

func costItem(purchaseID string, category domain.CostCategory, amount string) domain.CostItem {
	return domain.CostItem{
		CostItemID: uuid.NewString(),
		PurchaseID: purchaseID,
		Category:   category,
		Amount:     decimal.RequireFromString(amount),
	}
}

// --- CreateCostItem ---

func (suite *CostServiceTestSuite) TestCreateCostItem_Success() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	req := dto.CreateCostItemRequest{
		PurchaseID: purchaseID,
		Category:   "FLETE",
		Amount:     decimal.RequireFromString("1250.505"),
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(&domain.Purchase{PurchaseID: purchaseID}, nil).Once()
	suite.mockCostRepo.On("SaveCostItem", ctx, mock.AnythingOfType("domain.CostItem")).Return(nil).Once()

	item, err := suite.service.CreateCostItem(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.CostItemID)
	suite.Equal(domain.CostFlete, item.Category)
	// Stored rounded to 2 decimal places.
	suite.True(item.Amount.Equal(decimal.RequireFromString("1250.51")), "got %s", item.Amount)
	suite.mockCostRepo.AssertExpectations(suite.T())
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestCreateCostItem_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateCostItemRequest{
		PurchaseID: uuid.NewString(),
		Category:   "SEGURO",
		Amount:     decimal.NewFromInt(100),
	}

	item, err := suite.service.CreateCostItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCostRepo.AssertNotCalled(suite.T(), "SaveCostItem", mock.Anything, mock.Anything)
}

func (suite *CostServiceTestSuite) TestCreateCostItem_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateCostItemRequest{
		PurchaseID: uuid.NewString(),
		Category:   "INLAND",
		Amount:     decimal.NewFromInt(-5),
	}

	item, err := suite.service.CreateCostItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CostServiceTestSuite) TestCreateCostItem_PurchaseMissing() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	req := dto.CreateCostItemRequest{
		PurchaseID: purchaseID,
		Category:   "INLAND",
		Amount:     decimal.NewFromInt(100),
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.CreateCostItem(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

// --- Totals ---

func (suite *CostServiceTestSuite) TestTotals_SumsPerCategory() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	items := []domain.CostItem{
		costItem(purchaseID, domain.CostInland, "100.00"),
		costItem(purchaseID, domain.CostInland, "50.25"),
		costItem(purchaseID, domain.CostFlete, "300.00"),
		costItem(purchaseID, domain.CostMantEjec, "75.75"),
	}

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).Return(items, nil).Once()

	totals, err := suite.service.Totals(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.True(totals.Inland.Equal(decimal.RequireFromString("150.25")))
	suite.True(totals.Flete.Equal(decimal.RequireFromString("300.00")))
	suite.True(totals.MantEjec.Equal(decimal.RequireFromString("75.75")))
	suite.True(totals.GastosPto.IsZero())
	suite.True(totals.Trasld.IsZero())
	suite.True(totals.Repuestos.IsZero())
	suite.True(totals.Total.Equal(decimal.RequireFromString("526.00")), "got %s", totals.Total)
	suite.mockCostRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestTotals_OrderAndSplitIndependent() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	combined := []domain.CostItem{
		costItem(purchaseID, domain.CostFlete, "300.00"),
	}
	split := []domain.CostItem{
		costItem(purchaseID, domain.CostFlete, "120.00"),
		costItem(purchaseID, domain.CostFlete, "180.00"),
	}

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).Return(combined, nil).Once()
	combinedTotals, err := suite.service.Totals(ctx, purchaseID)
	suite.Require().NoError(err)

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).Return(split, nil).Once()
	splitTotals, err := suite.service.Totals(ctx, purchaseID)
	suite.Require().NoError(err)

	suite.True(combinedTotals.Flete.Equal(splitTotals.Flete))
	suite.True(combinedTotals.Total.Equal(splitTotals.Total))
}

func (suite *CostServiceTestSuite) TestTotals_EmptyPurchase() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).Return([]domain.CostItem{}, nil).Once()

	totals, err := suite.service.Totals(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.True(totals.Total.IsZero())
	suite.True(totals.Inland.IsZero())
}

func (suite *CostServiceTestSuite) TestTotals_LegacyCategoryCountsTowardTotalOnly() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	items := []domain.CostItem{
		costItem(purchaseID, domain.CostInland, "100.00"),
		costItem(purchaseID, domain.CostCategory("SEGURO"), "40.00"),
	}

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).Return(items, nil).Once()

	totals, err := suite.service.Totals(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.True(totals.Inland.Equal(decimal.RequireFromString("100.00")))
	// The unknown bucket is not dropped from the grand total.
	suite.True(totals.Total.Equal(decimal.RequireFromString("140.00")), "got %s", totals.Total)
}

func (suite *CostServiceTestSuite) TestTotals_StoreFailurePropagates() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).
		Return(nil, apperrors.NewAppError(500, "query failed", errStoreDown)).Once()

	_, err := suite.service.Totals(ctx, purchaseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStore)
}

func (suite *CostServiceTestSuite) TestTotalsOrZero_DegradesOnStoreFailure() {
	ctx := context.Background()
	purchaseID := uuid.NewString()

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).
		Return(nil, apperrors.NewAppError(500, "query failed", errStoreDown)).Once()

	totals := suite.service.TotalsOrZero(ctx, purchaseID)

	suite.True(totals.Total.IsZero())
	suite.True(totals.Inland.IsZero())
	suite.True(totals.MantEjec.IsZero())
}

// --- Summary ---

func (suite *CostServiceTestSuite) TestSummary_CanonicalRowOrder() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	items := []domain.CostItem{
		costItem(purchaseID, domain.CostMantEjec, "75.00"),
		costItem(purchaseID, domain.CostInland, "100.00"),
	}

	suite.mockCostRepo.On("ListCostItemsByPurchase", ctx, purchaseID).Return(items, nil).Once()

	summary, err := suite.service.Summary(ctx, purchaseID)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Rows, len(domain.KnownCostCategories))
	suite.Equal(domain.CostInland, summary.Rows[0].Category)
	suite.Equal("Inland", summary.Rows[0].Label)
	suite.Equal(domain.CostMantEjec, summary.Rows[len(summary.Rows)-1].Category)
	suite.True(summary.Rows[0].Amount.Equal(decimal.RequireFromString("100.00")))
	suite.True(summary.Total.Equal(decimal.RequireFromString("175.00")))
}

func TestCostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CostServiceTestSuite))
}
