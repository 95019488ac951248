package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/utils/money"
)

// summaryService derives financial figures from recorded periods and entries.
// It never writes.
type summaryService struct {
	periodRepo   portsrepo.PeriodReader
	parkRepo     portsrepo.ParkReader
	entryRepo    portsrepo.ServiceEntryReader
	paymentRepo  portsrepo.PaymentReader
	employeeRepo portsrepo.EmployeeReader
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	periodRepo portsrepo.PeriodReader,
	parkRepo portsrepo.ParkReader,
	entryRepo portsrepo.ServiceEntryReader,
	paymentRepo portsrepo.PaymentReader,
	employeeRepo portsrepo.EmployeeReader,
) portssvc.SummarySvcFacade {
	return &summaryService{
		periodRepo:   periodRepo,
		parkRepo:     parkRepo,
		entryRepo:    entryRepo,
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// leaderAccumulator collects a leader's meters across entries. The per-entry
// meters are kept so earnings can round entry by entry once the rate is known.
type leaderAccumulator struct {
	leaderID    int64
	meters      decimal.Decimal
	entryMeters []decimal.Decimal
}

// CalculateSummary computes the full financial summary of one period.
//
// Gross revenue derives from the total meters priced at the period's current
// rate with one final rounding; the entries' stored gross values are display
// fields and play no part here. Leader cost uses the leader's own price per
// meter when positive, the period rate otherwise, rounded per entry. Expected
// client billing adds the car rental value on top of the gross revenue, and
// the margin is net revenue as a percentage of it.
func (s *summaryService) CalculateSummary(ctx context.Context, periodID int64) (*domain.FinancialSummary, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}
	entries, err := s.entryRepo.ListServiceEntriesByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("service entries of period %d: %w", periodID, err)
	}
	payments, err := s.paymentRepo.ListPaymentsByPeriod(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("payments of period %d: %w", periodID, err)
	}

	totalMeters := decimal.Zero
	helpersCost := decimal.Zero
	leaders := map[int64]*leaderAccumulator{}

	for i := range entries {
		entry := &entries[i]
		totalMeters = totalMeters.Add(entry.Meters)
		for _, helper := range entry.Helpers {
			helpersCost = helpersCost.Add(helper.TotalCost)
		}
		if entry.LeaderID == nil {
			continue
		}
		acc, ok := leaders[*entry.LeaderID]
		if !ok {
			acc = &leaderAccumulator{leaderID: *entry.LeaderID}
			leaders[*entry.LeaderID] = acc
		}
		acc.meters = acc.meters.Add(entry.Meters)
		acc.entryMeters = append(acc.entryMeters, entry.Meters)
	}

	leaderEarnings, leaderCost, err := s.priceLeaders(ctx, period, leaders)
	if err != nil {
		return nil, err
	}

	grossRevenue := money.Round2(totalMeters.Mul(period.JVAPricePerMeter))
	helpersCost = money.Round2(helpersCost)
	taxes := money.Round2(grossRevenue.Mul(period.TaxRate))
	carRental := period.CarRentalValue
	expectedBilling := money.Round2(grossRevenue.Add(carRental))

	clientPayments := decimal.Zero
	additionalPayments := decimal.Zero
	for i := range payments {
		// Everything that is not money coming in from the client is a cost.
		if payments[i].Category == domain.PaymentClientPayment {
			clientPayments = clientPayments.Add(payments[i].Amount)
			continue
		}
		additionalPayments = additionalPayments.Add(payments[i].Amount)
	}
	clientPayments = money.Round2(clientPayments)
	additionalPayments = money.Round2(additionalPayments)

	totalCost := money.Round2(helpersCost.Add(leaderCost).Add(taxes).Add(additionalPayments))
	netRevenue := money.Round2(expectedBilling.Sub(totalCost))

	marginPercent := decimal.Zero
	if expectedBilling.IsPositive() {
		marginPercent = netRevenue.Mul(decimal.NewFromInt(100)).DivRound(expectedBilling, 2)
	}

	return &domain.FinancialSummary{
		PeriodID:               period.ID,
		TotalServices:          len(entries),
		TotalPayments:          len(payments),
		TotalMeters:            totalMeters,
		GrossRevenue:           grossRevenue,
		HelpersCost:            helpersCost,
		LeaderCost:             leaderCost,
		LeaderEarnings:         leaderEarnings,
		Taxes:                  taxes,
		CarRentalValue:         carRental,
		ExpectedClientBilling:  expectedBilling,
		ClientPaymentsReceived: clientPayments,
		ClientBalancePending:   money.Round2(expectedBilling.Sub(clientPayments)),
		AdditionalPayments:     additionalPayments,
		TotalCost:              totalCost,
		NetRevenue:             netRevenue,
		MarginPercent:          marginPercent,
	}, nil
}

// priceLeaders resolves the accumulated leaders, picks each one's effective
// rate and produces the earnings breakdown ordered by leader id. Earnings
// round per entry, so a leader's total is the sum of already-rounded values.
func (s *summaryService) priceLeaders(ctx context.Context, period *domain.Period, leaders map[int64]*leaderAccumulator) ([]domain.LeaderEarning, decimal.Decimal, error) {
	earnings := make([]domain.LeaderEarning, 0, len(leaders))
	leaderCost := decimal.Zero
	if len(leaders) == 0 {
		return earnings, leaderCost, nil
	}

	ids := make([]int64, 0, len(leaders))
	for id := range leaders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	employees, err := s.employeeRepo.FindEmployeesByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("summary leaders: %w", err)
	}

	for _, id := range ids {
		acc := leaders[id]
		rate := period.LeaderPricePerMeter
		name := ""
		if employee, ok := employees[id]; ok {
			name = employee.Name
			if override, ok := employee.LeaderRateOverride(); ok {
				rate = override
			}
		}
		total := decimal.Zero
		for _, meters := range acc.entryMeters {
			total = total.Add(money.Round2(meters.Mul(rate)))
		}
		leaderCost = leaderCost.Add(total)
		earnings = append(earnings, domain.LeaderEarning{
			LeaderID:      id,
			LeaderName:    name,
			TotalMeters:   acc.meters,
			RateUsed:      rate,
			TotalEarnings: total,
		})
	}
	return earnings, money.Round2(leaderCost), nil
}

// CalculateParkOverview composes per-period summaries for every period of a
// park, newest first. Inflow is the expected client billing, outflow the total
// cost, and park totals are plain sums over the periods.
func (s *summaryService) CalculateParkOverview(ctx context.Context, parkID int64) (*domain.ParkOverview, error) {
	park, err := s.parkRepo.FindParkByID(ctx, parkID)
	if err != nil {
		return nil, fmt.Errorf("park %d: %w", parkID, err)
	}
	periods, err := s.periodRepo.ListPeriodsByPark(ctx, parkID)
	if err != nil {
		return nil, fmt.Errorf("periods of park %d: %w", parkID, err)
	}

	overview := &domain.ParkOverview{
		ParkID:       park.ID,
		ParkName:     park.Name,
		TotalPeriods: len(periods),
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		TotalBalance: decimal.Zero,
		Periods:      make([]domain.ParkPeriodSummary, 0, len(periods)),
	}

	for i := range periods {
		summary, err := s.CalculateSummary(ctx, periods[i].ID)
		if err != nil {
			return nil, err
		}
		periodSummary := domain.ParkPeriodSummary{
			PeriodID:      periods[i].ID,
			Year:          periods[i].Year,
			Month:         periods[i].Month,
			Status:        periods[i].Status,
			Inflow:        summary.ExpectedClientBilling,
			Outflow:       summary.TotalCost,
			Balance:       summary.NetRevenue,
			MarginPercent: summary.MarginPercent,
			TotalServices: summary.TotalServices,
			TotalPayments: summary.TotalPayments,
		}
		overview.TotalInflow = overview.TotalInflow.Add(periodSummary.Inflow)
		overview.TotalOutflow = overview.TotalOutflow.Add(periodSummary.Outflow)
		overview.TotalBalance = overview.TotalBalance.Add(periodSummary.Balance)
		overview.Periods = append(overview.Periods, periodSummary)
	}
	return overview, nil
}

// SummarizeCarRental aggregates car rental income per period, month and year,
// newest first. Every period contributes a bucket entry, including ones with
// zero rental income.
func (s *summaryService) SummarizeCarRental(ctx context.Context, parkID *int64) (*domain.CarRentalSummary, error) {
	summary := &domain.CarRentalSummary{
		TotalAllTime:     decimal.Zero,
		CurrentYearTotal: decimal.Zero,
		AnnualTotals:     []domain.CarRentalYearTotal{},
		MonthlyTotals:    []domain.CarRentalMonthTotal{},
		PeriodTotals:     []domain.CarRentalPeriodTotal{},
	}

	var periods []domain.Period
	var err error
	parkNames := map[int64]string{}
	if parkID != nil {
		park, err := s.parkRepo.FindParkByID(ctx, *parkID)
		if err != nil {
			return nil, fmt.Errorf("park %d: %w", *parkID, err)
		}
		summary.ParkID = &park.ID
		summary.ParkName = &park.Name
		parkNames[park.ID] = park.Name
		periods, err = s.periodRepo.ListPeriodsByPark(ctx, park.ID)
		if err != nil {
			return nil, fmt.Errorf("periods of park %d: %w", park.ID, err)
		}
	} else {
		periods, err = s.periodRepo.ListPeriods(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing periods: %w", err)
		}
	}

	currentYear := time.Now().Year()
	monthTotals := map[[2]int]decimal.Decimal{}
	yearTotals := map[int]decimal.Decimal{}

	for i := range periods {
		period := &periods[i]
		name, ok := parkNames[period.ParkID]
		if !ok {
			park, err := s.parkRepo.FindParkByID(ctx, period.ParkID)
			if err != nil {
				return nil, fmt.Errorf("park %d: %w", period.ParkID, err)
			}
			name = park.Name
			parkNames[park.ID] = park.Name
		}
		summary.PeriodTotals = append(summary.PeriodTotals, domain.CarRentalPeriodTotal{
			PeriodID: period.ID,
			ParkID:   period.ParkID,
			ParkName: name,
			Year:     period.Year,
			Month:    period.Month,
			Value:    period.CarRentalValue,
		})
		monthKey := [2]int{period.Year, period.Month}
		monthTotals[monthKey] = monthTotals[monthKey].Add(period.CarRentalValue)
		yearTotals[period.Year] = yearTotals[period.Year].Add(period.CarRentalValue)
		summary.TotalAllTime = summary.TotalAllTime.Add(period.CarRentalValue)
		if period.Year == currentYear {
			summary.CurrentYearTotal = summary.CurrentYearTotal.Add(period.CarRentalValue)
		}
	}

	sort.Slice(summary.PeriodTotals, func(i, j int) bool {
		a, b := summary.PeriodTotals[i], summary.PeriodTotals[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.PeriodID > b.PeriodID
	})

	for key, total := range monthTotals {
		summary.MonthlyTotals = append(summary.MonthlyTotals, domain.CarRentalMonthTotal{
			Year:  key[0],
			Month: key[1],
			Total: money.Round2(total),
		})
	}
	sort.Slice(summary.MonthlyTotals, func(i, j int) bool {
		a, b := summary.MonthlyTotals[i], summary.MonthlyTotals[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})

	for year, total := range yearTotals {
		summary.AnnualTotals = append(summary.AnnualTotals, domain.CarRentalYearTotal{
			Year:  year,
			Total: money.Round2(total),
		})
	}
	sort.Slice(summary.AnnualTotals, func(i, j int) bool {
		return summary.AnnualTotals[i].Year > summary.AnnualTotals[j].Year
	})

	summary.TotalAllTime = money.Round2(summary.TotalAllTime)
	summary.CurrentYearTotal = money.Round2(summary.CurrentYearTotal)
	return summary, nil
}
