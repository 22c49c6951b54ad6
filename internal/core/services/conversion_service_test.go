package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) Resolve(ctx context.Context, fromCode, toCode string, asOf *time.Time) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, fromCode, toCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockResolver *MockRateResolver
	service      portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockResolver = new(MockRateResolver)
	suite.service = services.NewConversionService(suite.mockResolver)
}

func (suite *ConversionServiceTestSuite) TestConvert_AppliesRate() {
	ctx := context.Background()
	rate := &domain.CurrencyRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "GTQ",
		Rate:             decimal.NewFromInt(10),
	}

	suite.mockResolver.On("Resolve", ctx, "USD", "GTQ", (*time.Time)(nil)).Return(rate, nil).Once()

	result, err := suite.service.Convert(ctx, decimal.NewFromInt(150), "USD", "GTQ", nil)

	suite.Require().NoError(err)
	suite.True(result.Amount.Equal(decimal.NewFromInt(1500)), "got %s", result.Amount)
	suite.True(result.RateUsed.Equal(decimal.NewFromInt(10)))
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_RoundsFinalAmountOnly() {
	ctx := context.Background()
	rate := &domain.CurrencyRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.333333"),
	}

	suite.mockResolver.On("Resolve", ctx, "USD", "EUR", (*time.Time)(nil)).Return(rate, nil).Once()

	result, err := suite.service.Convert(ctx, decimal.RequireFromString("100.55"), "USD", "EUR", nil)

	suite.Require().NoError(err)
	// 100.55 * 0.333333 = 33.51663315, rounded half-up to 2 places
	suite.True(result.Amount.Equal(decimal.RequireFromString("33.52")), "got %s", result.Amount)
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_IdentityReturnsAmountUnchanged() {
	ctx := context.Background()

	result, err := suite.service.Convert(ctx, decimal.RequireFromString("123.456"), "USD", "USD", nil)

	suite.Require().NoError(err)
	// Exactly the input, no rounding applied.
	suite.True(result.Amount.Equal(decimal.RequireFromString("123.456")))
	suite.True(result.RateUsed.Equal(decimal.NewFromInt(1)))
	suite.mockResolver.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_NoRateFails() {
	ctx := context.Background()

	suite.mockResolver.On("Resolve", ctx, "USD", "JPY", (*time.Time)(nil)).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Convert(ctx, decimal.NewFromInt(100), "USD", "JPY", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConversionUnavailable)
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_PassesAsOfThrough() {
	ctx := context.Background()
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rate := &domain.CurrencyRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.9"),
		RateDate:         asOf,
	}

	suite.mockResolver.On("Resolve", ctx, "USD", "EUR", &asOf).Return(rate, nil).Once()

	result, err := suite.service.Convert(ctx, decimal.NewFromInt(200), "USD", "EUR", &asOf)

	suite.Require().NoError(err)
	suite.True(result.Amount.Equal(decimal.NewFromInt(180)))
	suite.mockResolver.AssertExpectations(suite.T())
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
