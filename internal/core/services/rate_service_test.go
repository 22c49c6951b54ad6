package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) FindLatestRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindRateOn(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, fromCode, toCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) ListRates(ctx context.Context, fromCurrency, toCurrency *string, onOrBefore *time.Time, page, pageSize int) ([]domain.CurrencyRate, int, error) {
	args := m.Called(ctx, fromCurrency, toCurrency, onOrBefore, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Int(1), args.Error(2)
}

func (m *MockCurrencyRateRepository) SaveRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockCurrencyRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo    *MockCurrencyRateRepository
	mockCurrencySvc *MockCurrencyService
	service         portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockCurrencyRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewRateService(suite.mockRateRepo, suite.mockCurrencySvc)
}

// --- Resolve ---

func (suite *RateServiceTestSuite) TestResolve_DirectRatePreferred() {
	ctx := context.Background()
	direct := &domain.CurrencyRate{
		RateID:           uuid.NewString(),
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.85"),
		RateDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRateRepo.On("FindLatestRate", ctx, "USD", "EUR").Return(direct, nil).Once()

	rate, err := suite.service.Resolve(ctx, "USD", "EUR", nil)

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.85")))
	// The inverse pair must not be consulted when a direct rate exists.
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRate", ctx, "EUR", "USD")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_InverseFallback() {
	ctx := context.Background()
	inverse := &domain.CurrencyRate{
		RateID:           uuid.NewString(),
		FromCurrencyCode: "EUR",
		ToCurrencyCode:   "USD",
		Rate:             decimal.RequireFromString("0.8"),
		RateDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRateRepo.On("FindLatestRate", ctx, "USD", "EUR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindLatestRate", ctx, "EUR", "USD").Return(inverse, nil).Once()

	rate, err := suite.service.Resolve(ctx, "USD", "EUR", nil)

	suite.Require().NoError(err)
	suite.Equal("USD", rate.FromCurrencyCode)
	suite.Equal("EUR", rate.ToCurrencyCode)
	// 1 / 0.8 at 6 decimal places
	suite.True(rate.Rate.Equal(decimal.RequireFromString("1.25")), "got %s", rate.Rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_NearestPastDate() {
	ctx := context.Background()
	asOf := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	nearest := &domain.CurrencyRate{
		RateID:           uuid.NewString(),
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.9"),
		RateDate:         time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	// The lookup receives the truncated calendar day, never the raw timestamp.
	suite.mockRateRepo.On("FindRateOn", ctx, "USD", "EUR", day).Return(nearest, nil).Once()

	rate, err := suite.service.Resolve(ctx, "USD", "EUR", &asOf)

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.9")))
	suite.Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), rate.RateDate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_IdentityPair() {
	ctx := context.Background()

	rate, err := suite.service.Resolve(ctx, "USD", "USD", nil)

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1)))
	// Identity pairs never touch the store.
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestResolve_NoRateEitherDirection() {
	ctx := context.Background()

	suite.mockRateRepo.On("FindLatestRate", ctx, "USD", "JPY").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindLatestRate", ctx, "JPY", "USD").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.Resolve(ctx, "USD", "JPY", nil)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_InvalidCurrencyCode() {
	ctx := context.Background()

	rate, err := suite.service.Resolve(ctx, "US", "EUR", nil)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestResolve_LowercaseCodesNormalized() {
	ctx := context.Background()
	direct := &domain.CurrencyRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.85"),
	}

	suite.mockRateRepo.On("FindLatestRate", ctx, "USD", "EUR").Return(direct, nil).Once()

	rate, err := suite.service.Resolve(ctx, "usd", "eur", nil)

	suite.Require().NoError(err)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.85")))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

// --- UpsertRate ---

func (suite *RateServiceTestSuite) TestUpsertRate_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.UpsertCurrencyRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.85"),
		RateDate:         "2024-03-15",
		Source:           "central-bank",
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil).Once()
	suite.mockRateRepo.On("SaveRate", ctx, mock.AnythingOfType("domain.CurrencyRate")).Return(nil).Once()

	rate, err := suite.service.UpsertRate(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.RateID)
	suite.Equal("USD/EUR", rate.Pair())
	suite.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), rate.RateDate)
	suite.Equal(creatorUserID, rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestUpsertRate_NonPositiveRate() {
	ctx := context.Background()
	req := dto.UpsertCurrencyRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.Zero,
		RateDate:         "2024-03-15",
	}

	rate, err := suite.service.UpsertRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestUpsertRate_SamePair() {
	ctx := context.Background()
	req := dto.UpsertCurrencyRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
		RateDate:         "2024-03-15",
	}

	rate, err := suite.service.UpsertRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestUpsertRate_UnknownCurrency() {
	ctx := context.Background()
	req := dto.UpsertCurrencyRateRequest{
		FromCurrencyCode: "XXX",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.NewFromInt(2),
		RateDate:         "2024-03-15",
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.UpsertRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

// --- DeleteRate ---

func (suite *RateServiceTestSuite) TestDeleteRate_NotFound() {
	ctx := context.Background()
	rateID := uuid.NewString()

	suite.mockRateRepo.On("DeleteRate", ctx, rateID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRate(ctx, rateID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
