package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/core/services"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo   *MockPeriodRepository
	mockParkRepo     *MockParkRepository
	mockEntryRepo    *MockServiceEntryRepository
	mockPaymentRepo  *MockPaymentRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.SummarySvcFacade
	park             domain.Park
	period           domain.Period
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockParkRepo = new(MockParkRepository)
	suite.mockEntryRepo = new(MockServiceEntryRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewSummaryService(
		suite.mockPeriodRepo,
		suite.mockParkRepo,
		suite.mockEntryRepo,
		suite.mockPaymentRepo,
		suite.mockEmployeeRepo,
	)

	suite.park = domain.Park{ID: 7, Name: "Parque Central", ClientCNPJ: "12345678000190"}
	suite.period = domain.Period{
		ID:                  42,
		ParkID:              suite.park.ID,
		Year:                2025,
		Month:               6,
		JVAPricePerMeter:    decimal.RequireFromString("10"),
		LeaderPricePerMeter: decimal.Zero,
		TaxRate:             decimal.RequireFromString("0.05"),
		CarRentalValue:      decimal.RequireFromString("100"),
		Status:              domain.PeriodOpen,
	}
}

func (suite *SummaryServiceTestSuite) decEq(expected string, actual decimal.Decimal, msgAndArgs ...any) {
	suite.T().Helper()
	suite.True(actual.Equal(decimal.RequireFromString(expected)), msgAndArgs...)
}

func (suite *SummaryServiceTestSuite) TestCalculateSummary_CoreFigures() {
	ctx := context.Background()
	entries := []domain.ServiceEntry{
		{
			ID:         1,
			PeriodID:   suite.period.ID,
			Meters:     decimal.RequireFromString("50"),
			UnitPrice:  decimal.RequireFromString("10"),
			GrossValue: decimal.RequireFromString("500.00"),
		},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()
	suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, suite.period.ID).Return(entries, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, suite.period.ID).Return([]domain.PaymentEntry{}, nil).Once()

	summary, err := suite.service.CalculateSummary(ctx, suite.period.ID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.TotalServices)
	suite.decEq("50", summary.TotalMeters)
	suite.decEq("500.00", summary.GrossRevenue)
	suite.decEq("25.00", summary.Taxes, "5 percent of the gross revenue")
	suite.decEq("600.00", summary.ExpectedClientBilling, "gross plus car rental")
	suite.decEq("25.00", summary.TotalCost)
	suite.decEq("575.00", summary.NetRevenue)
	suite.decEq("95.83", summary.MarginPercent)
	suite.decEq("600.00", summary.ClientBalancePending, "nothing received yet")
	suite.Empty(summary.LeaderEarnings)
}

func (suite *SummaryServiceTestSuite) TestCalculateSummary_LeaderOwnRateBeatsPeriodRate() {
	ctx := context.Background()
	period := suite.period
	period.LeaderPricePerMeter = decimal.RequireFromString("2")
	leaderRate := decimal.RequireFromString("3")
	leaderID := int64(5)
	entries := []domain.ServiceEntry{
		{
			ID:         1,
			PeriodID:   period.ID,
			LeaderID:   &leaderID,
			Meters:     decimal.RequireFromString("10"),
			GrossValue: decimal.RequireFromString("100.00"),
		},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.ID).Return(&period, nil).Once()
	suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, period.ID).Return(entries, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, period.ID).Return([]domain.PaymentEntry{}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", ctx, []int64{leaderID}).Return(map[int64]domain.Employee{
		leaderID: {ID: leaderID, Name: "Marcos", Role: domain.RoleLeader, PricePerMeter: &leaderRate, Active: true},
	}, nil).Once()

	summary, err := suite.service.CalculateSummary(ctx, period.ID)

	suite.Require().NoError(err)
	suite.decEq("30.00", summary.LeaderCost)
	suite.Require().Len(summary.LeaderEarnings, 1)
	suite.Equal("Marcos", summary.LeaderEarnings[0].LeaderName)
	suite.decEq("3", summary.LeaderEarnings[0].RateUsed, "leader's own rate wins over the period rate")
	suite.decEq("30.00", summary.LeaderEarnings[0].TotalEarnings)
}

func (suite *SummaryServiceTestSuite) TestCalculateSummary_LeaderFallsBackToPeriodRate() {
	ctx := context.Background()
	period := suite.period
	period.LeaderPricePerMeter = decimal.RequireFromString("2")
	leaderID := int64(5)
	entries := []domain.ServiceEntry{
		{
			ID:         1,
			PeriodID:   period.ID,
			LeaderID:   &leaderID,
			Meters:     decimal.RequireFromString("10"),
			GrossValue: decimal.RequireFromString("100.00"),
		},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.ID).Return(&period, nil).Once()
	suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, period.ID).Return(entries, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, period.ID).Return([]domain.PaymentEntry{}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", ctx, []int64{leaderID}).Return(map[int64]domain.Employee{
		leaderID: {ID: leaderID, Name: "Marcos", Role: domain.RoleLeader, Active: true},
	}, nil).Once()

	summary, err := suite.service.CalculateSummary(ctx, period.ID)

	suite.Require().NoError(err)
	suite.decEq("20.00", summary.LeaderCost)
	suite.Require().Len(summary.LeaderEarnings, 1)
	suite.decEq("2", summary.LeaderEarnings[0].RateUsed)
}

func (suite *SummaryServiceTestSuite) TestCalculateSummary_HelpersAndPaymentBuckets() {
	ctx := context.Background()
	employeeID := int64(9)
	entries := []domain.ServiceEntry{
		{
			ID:         1,
			PeriodID:   suite.period.ID,
			Meters:     decimal.RequireFromString("50"),
			GrossValue: decimal.RequireFromString("500.00"),
			Helpers: []domain.ServiceHelper{
				{EmployeeID: employeeID, TotalCost: decimal.RequireFromString("600.00")},
				{EmployeeID: 10, TotalCost: decimal.RequireFromString("150.00")},
			},
		},
	}
	leaderID := int64(5)
	payments := []domain.PaymentEntry{
		{ID: 1, Category: domain.PaymentClientPayment, Amount: decimal.RequireFromString("300")},
		{ID: 2, Category: domain.PaymentOther, Amount: decimal.RequireFromString("50")},
		{ID: 3, Category: domain.PaymentEmployeeHelper, Amount: decimal.RequireFromString("600"), EmployeeID: &employeeID},
		{ID: 4, Category: domain.PaymentEmployeeLeader, Amount: decimal.RequireFromString("200"), EmployeeID: &leaderID},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.period.ID).Return(&suite.period, nil).Once()
	suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, suite.period.ID).Return(entries, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, suite.period.ID).Return(payments, nil).Once()

	summary, err := suite.service.CalculateSummary(ctx, suite.period.ID)

	suite.Require().NoError(err)
	suite.decEq("750.00", summary.HelpersCost)
	suite.decEq("300.00", summary.ClientPaymentsReceived)
	suite.decEq("850.00", summary.AdditionalPayments, "every non-client payment is a cost")
	// helpers 750 + taxes 25 + additional 850
	suite.decEq("1625.00", summary.TotalCost)
	suite.decEq("300.00", summary.ClientBalancePending, "expected 600 minus 300 received")
	suite.Equal(4, summary.TotalPayments)
}

func (suite *SummaryServiceTestSuite) TestCalculateSummary_SubCentRounding() {
	ctx := context.Background()
	period := suite.period
	period.JVAPricePerMeter = decimal.RequireFromString("0.10")
	period.LeaderPricePerMeter = decimal.RequireFromString("0.10")
	period.TaxRate = decimal.Zero
	period.CarRentalValue = decimal.Zero
	leaderID := int64(5)
	entries := []domain.ServiceEntry{
		{ID: 1, PeriodID: period.ID, LeaderID: &leaderID, Meters: decimal.RequireFromString("0.05"), GrossValue: decimal.RequireFromString("0.01")},
		{ID: 2, PeriodID: period.ID, LeaderID: &leaderID, Meters: decimal.RequireFromString("0.05"), GrossValue: decimal.RequireFromString("0.01")},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.ID).Return(&period, nil).Once()
	suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, period.ID).Return(entries, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, period.ID).Return([]domain.PaymentEntry{}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeesByIDs", ctx, []int64{leaderID}).Return(map[int64]domain.Employee{
		leaderID: {ID: leaderID, Name: "Marcos", Role: domain.RoleLeader, Active: true},
	}, nil).Once()

	summary, err := suite.service.CalculateSummary(ctx, period.ID)

	suite.Require().NoError(err)
	suite.decEq("0.01", summary.GrossRevenue, "total meters priced once, not a sum of per-entry roundings")
	suite.decEq("0.02", summary.LeaderCost, "leader earnings round per entry before summing")
}

func (suite *SummaryServiceTestSuite) TestCalculateSummary_EmptyPeriodHasZeroMargin() {
	ctx := context.Background()
	period := suite.period
	period.CarRentalValue = decimal.Zero

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.ID).Return(&period, nil).Once()
	suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, period.ID).Return([]domain.ServiceEntry{}, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, period.ID).Return([]domain.PaymentEntry{}, nil).Once()

	summary, err := suite.service.CalculateSummary(ctx, period.ID)

	suite.Require().NoError(err)
	suite.decEq("0", summary.ExpectedClientBilling)
	suite.decEq("0", summary.MarginPercent, "no division against a zero billing")
}

func (suite *SummaryServiceTestSuite) TestCalculateParkOverview_SumsPeriods() {
	ctx := context.Background()
	periodJune := suite.period
	periodJune.TaxRate = decimal.Zero
	periodMay := suite.period
	periodMay.ID = 41
	periodMay.Month = 5
	periodMay.TaxRate = decimal.Zero
	periodMay.CarRentalValue = decimal.RequireFromString("50")

	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()
	suite.mockPeriodRepo.On("ListPeriodsByPark", ctx, suite.park.ID).Return([]domain.Period{periodJune, periodMay}, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodJune.ID).Return(&periodJune, nil).Once()
	suite.mockPeriodRepo.On("FindPeriodByID", ctx, periodMay.ID).Return(&periodMay, nil).Once()
	for _, id := range []int64{periodJune.ID, periodMay.ID} {
		suite.mockEntryRepo.On("ListServiceEntriesByPeriod", ctx, id).Return([]domain.ServiceEntry{}, nil).Once()
		suite.mockPaymentRepo.On("ListPaymentsByPeriod", ctx, id).Return([]domain.PaymentEntry{}, nil).Once()
	}

	overview, err := suite.service.CalculateParkOverview(ctx, suite.park.ID)

	suite.Require().NoError(err)
	suite.Equal(suite.park.Name, overview.ParkName)
	suite.Equal(2, overview.TotalPeriods)
	suite.Require().Len(overview.Periods, 2)
	suite.decEq("100.00", overview.Periods[0].Inflow, "car rental only")
	suite.decEq("50.00", overview.Periods[1].Inflow)
	suite.decEq("150.00", overview.TotalInflow)
	suite.decEq("0", overview.TotalOutflow)
	suite.decEq("150.00", overview.TotalBalance)
}

func (suite *SummaryServiceTestSuite) TestSummarizeCarRental_OrdersNewestFirstIncludingZeroValues() {
	ctx := context.Background()
	periods := []domain.Period{
		{ID: 30, ParkID: suite.park.ID, Year: 2024, Month: 12, CarRentalValue: decimal.RequireFromString("80")},
		{ID: 41, ParkID: suite.park.ID, Year: 2025, Month: 5, CarRentalValue: decimal.RequireFromString("50")},
		{ID: 42, ParkID: suite.park.ID, Year: 2025, Month: 6, CarRentalValue: decimal.RequireFromString("100")},
		{ID: 43, ParkID: suite.park.ID, Year: 2025, Month: 7, CarRentalValue: decimal.Zero},
	}

	suite.mockPeriodRepo.On("ListPeriods", ctx).Return(periods, nil).Once()
	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()

	summary, err := suite.service.SummarizeCarRental(ctx, nil)

	suite.Require().NoError(err)
	suite.Nil(summary.ParkID)
	suite.decEq("230", summary.TotalAllTime)
	suite.Require().Len(summary.PeriodTotals, 4, "a period without rental income still gets a zero bucket")
	suite.Equal(int64(43), summary.PeriodTotals[0].PeriodID)
	suite.decEq("0", summary.PeriodTotals[0].Value)
	suite.Equal(int64(42), summary.PeriodTotals[1].PeriodID)
	suite.Equal(int64(41), summary.PeriodTotals[2].PeriodID)
	suite.Equal(int64(30), summary.PeriodTotals[3].PeriodID)
	suite.Equal(suite.park.Name, summary.PeriodTotals[0].ParkName)
	suite.Require().Len(summary.AnnualTotals, 2)
	suite.Equal(2025, summary.AnnualTotals[0].Year)
	suite.decEq("150.00", summary.AnnualTotals[0].Total)
	suite.Require().Len(summary.MonthlyTotals, 4)
	suite.Equal(7, summary.MonthlyTotals[0].Month)
	suite.decEq("0.00", summary.MonthlyTotals[0].Total)
	suite.mockParkRepo.AssertNumberOfCalls(suite.T(), "FindParkByID", 1)
}

func (suite *SummaryServiceTestSuite) TestSummarizeCarRental_ScopedToPark() {
	ctx := context.Background()
	periods := []domain.Period{
		{ID: 42, ParkID: suite.park.ID, Year: 2025, Month: 6, CarRentalValue: decimal.RequireFromString("100")},
	}

	suite.mockParkRepo.On("FindParkByID", ctx, suite.park.ID).Return(&suite.park, nil).Once()
	suite.mockPeriodRepo.On("ListPeriodsByPark", ctx, suite.park.ID).Return(periods, nil).Once()

	summary, err := suite.service.SummarizeCarRental(ctx, &suite.park.ID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary.ParkID)
	suite.Equal(suite.park.ID, *summary.ParkID)
	suite.Require().NotNil(summary.ParkName)
	suite.Equal(suite.park.Name, *summary.ParkName)
	suite.decEq("100", summary.TotalAllTime)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "ListPeriods", ctx)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
