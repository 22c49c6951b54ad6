package services_test

import (
	"context"
	"testing"

	"github.com/fegundez/maqtrack/internal/apperrors"
	"github.com/fegundez/maqtrack/internal/core/domain"
	portssvc "github.com/fegundez/maqtrack/internal/core/ports/services"
	"github.com/fegundez/maqtrack/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ManagementRecordRepository ---
type MockManagementRecordRepository struct {
	mock.Mock
}

func (m *MockManagementRecordRepository) ListManagementRecords(ctx context.Context, filter domain.ConsolidationFilter) ([]domain.ManagementRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManagementRecord), args.Error(1)
}

// --- Test Suite ---
type ConsolidationServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockManagementRecordRepository
	service        portssvc.ConsolidationSvcFacade
}

func (suite *ConsolidationServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockManagementRecordRepository)
	suite.service = services.NewConsolidationService(suite.mockRecordRepo)
}

func nullAmount(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func record(state domain.SalesState, purchaseType domain.PurchaseType) domain.ManagementRecord {
	return domain.ManagementRecord{
		RecordID:     uuid.NewString(),
		PurchaseID:   uuid.NewString(),
		MachineID:    uuid.NewString(),
		SalesState:   state,
		PurchaseType: purchaseType,
		Incoterm:     domain.IncotermCIF,
		CurrencyCode: "USD",
	}
}

// --- Totals ---

func (suite *ConsolidationServiceTestSuite) TestTotals_EmptySetKeepsCanonicalKeys() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).Return([]domain.ManagementRecord{}, nil).Once()

	totals, err := suite.service.Totals(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(0, totals.TotalMachines)
	suite.True(totals.TotalFOB.IsZero())
	// Canonical bucket keys are present even with no data.
	suite.Equal(0, totals.ByState[domain.SalesStateOK])
	suite.Equal(0, totals.ByState[domain.SalesStateX])
	suite.Equal(0, totals.ByState[domain.SalesStateBlanco])
	suite.Equal(0, totals.ByType[domain.PurchaseTypeSubasta])
	suite.Equal(0, totals.ByType[domain.PurchaseTypeCompraDirecta])
	suite.Equal(0, totals.ByType[domain.PurchaseTypeStock])
}

func (suite *ConsolidationServiceTestSuite) TestTotals_NullMonetaryFieldsCountAsZero() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	withValues := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	withValues.PrecioFOB = nullAmount("10000.00")
	withValues.CifUSD = nullAmount("12500.00")
	withValues.Inland = nullAmount("300.00")
	withValues.Proyectado = nullAmount("15000.00")

	allNull := record(domain.SalesStateBlanco, domain.PurchaseTypeStock)

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{withValues, allNull}, nil).Once()

	totals, err := suite.service.Totals(ctx, filter)

	suite.Require().NoError(err)
	// The all-null record still counts as a machine.
	suite.Equal(2, totals.TotalMachines)
	suite.True(totals.TotalFOB.Equal(decimal.RequireFromString("10000.00")))
	suite.True(totals.TotalCIF.Equal(decimal.RequireFromString("12500.00")))
	suite.True(totals.TotalProjected.Equal(decimal.RequireFromString("15000.00")))
	suite.True(totals.TotalCosts.Inland.Equal(decimal.RequireFromString("300.00")))
	suite.True(totals.TotalCosts.Total.Equal(decimal.RequireFromString("300.00")))
	suite.Equal(1, totals.ByState[domain.SalesStateOK])
	suite.Equal(1, totals.ByState[domain.SalesStateBlanco])
	suite.Equal(1, totals.ByType[domain.PurchaseTypeSubasta])
	suite.Equal(1, totals.ByType[domain.PurchaseTypeStock])
}

func (suite *ConsolidationServiceTestSuite) TestTotals_NonCanonicalValuesGetOwnBuckets() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	odd := record(domain.SalesState("RESERVADO"), domain.PurchaseType("CONSIGNACION"))

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{odd}, nil).Once()

	totals, err := suite.service.Totals(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(1, totals.ByState[domain.SalesState("RESERVADO")])
	suite.Equal(1, totals.ByType[domain.PurchaseType("CONSIGNACION")])
	// Canonical keys remain alongside the extra buckets.
	suite.Equal(0, totals.ByState[domain.SalesStateOK])
}

func (suite *ConsolidationServiceTestSuite) TestTotalsOrZero_DegradesOnStoreFailure() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return(nil, apperrors.NewAppError(500, "query failed", errStoreDown)).Once()

	totals := suite.service.TotalsOrZero(ctx, filter)

	suite.Equal(0, totals.TotalMachines)
	suite.True(totals.TotalFOB.IsZero())
	// Degraded result is structurally complete.
	suite.Contains(totals.ByState, domain.SalesStateOK)
	suite.Contains(totals.ByType, domain.PurchaseTypeSubasta)
}

// --- Stats ---

func (suite *ConsolidationServiceTestSuite) TestStats_AverageMargin() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	sold := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	sold.CifUSD = nullAmount("1550.00")
	sold.PvpEst = nullAmount("2000.00")

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{sold}, nil).Once()

	stats, err := suite.service.Stats(ctx, filter)

	suite.Require().NoError(err)
	// (2000 - 1550) / 2000 * 100 = 22.5
	suite.True(stats.AverageMargin.Equal(decimal.RequireFromString("22.5")), "got %s", stats.AverageMargin)
}

func (suite *ConsolidationServiceTestSuite) TestStats_ExcludesRecordsWithoutBothFields() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	complete := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	complete.CifUSD = nullAmount("800.00")
	complete.PvpEst = nullAmount("1000.00")

	noPvp := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	noPvp.CifUSD = nullAmount("500.00")

	zeroCif := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	zeroCif.CifUSD = nullAmount("0")
	zeroCif.PvpEst = nullAmount("900.00")

	zeroPvp := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	zeroPvp.CifUSD = nullAmount("400.00")
	zeroPvp.PvpEst = nullAmount("0")

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{complete, noPvp, zeroCif, zeroPvp}, nil).Once()

	stats, err := suite.service.Stats(ctx, filter)

	suite.Require().NoError(err)
	// Only the complete record enters the mean: (1000-800)/1000*100 = 20.
	suite.True(stats.AverageMargin.Equal(decimal.RequireFromString("20")), "got %s", stats.AverageMargin)
	// Excluded records still count as machines.
	suite.Equal(4, stats.TotalMachines)
}

func (suite *ConsolidationServiceTestSuite) TestStats_NoEligibleRecordsZeroMargin() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	bare := record(domain.SalesStateBlanco, domain.PurchaseTypeStock)

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{bare}, nil).Once()

	stats, err := suite.service.Stats(ctx, filter)

	suite.Require().NoError(err)
	suite.True(stats.AverageMargin.IsZero())
	suite.Equal(0, stats.MachinesWithProjections)
}

func (suite *ConsolidationServiceTestSuite) TestStats_CountsProjections() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	projected := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	projected.Proyectado = nullAmount("5000.00")

	zeroProjection := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)
	zeroProjection.Proyectado = nullAmount("0")

	noProjection := record(domain.SalesStateOK, domain.PurchaseTypeSubasta)

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{projected, zeroProjection, noProjection}, nil).Once()

	stats, err := suite.service.Stats(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal(1, stats.MachinesWithProjections)
}

func (suite *ConsolidationServiceTestSuite) TestStatsOrZero_DegradesOnStoreFailure() {
	ctx := context.Background()
	filter := domain.ConsolidationFilter{}

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return(nil, apperrors.NewAppError(500, "query failed", errStoreDown)).Once()

	stats := suite.service.StatsOrZero(ctx, filter)

	suite.Equal(0, stats.TotalMachines)
	suite.True(stats.AverageMargin.IsZero())
	suite.Contains(stats.ByState, domain.SalesStateBlanco)
}

func (suite *ConsolidationServiceTestSuite) TestStats_FilterPassedThrough() {
	ctx := context.Background()
	state := domain.SalesStateOK
	filter := domain.ConsolidationFilter{SalesState: &state}

	suite.mockRecordRepo.On("ListManagementRecords", ctx, filter).
		Return([]domain.ManagementRecord{}, nil).Once()

	_, err := suite.service.Stats(ctx, filter)

	suite.Require().NoError(err)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func TestConsolidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConsolidationServiceTestSuite))
}
