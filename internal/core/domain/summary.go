package domain

import "github.com/shopspring/decimal"

// FinancialSummary is the derived financial picture of one period. All values
// are rounded to 2 decimals half-up.
type FinancialSummary struct {
	PeriodID               int64           `json:"periodId"`
	TotalServices          int             `json:"totalServices"`
	TotalPayments          int             `json:"totalPayments"`
	TotalMeters            decimal.Decimal `json:"totalMeters"`
	GrossRevenue           decimal.Decimal `json:"grossRevenue"`
	HelpersCost            decimal.Decimal `json:"helpersCost"`
	LeaderCost             decimal.Decimal `json:"leaderCost"`
	LeaderEarnings         []LeaderEarning `json:"leaderEarnings"`
	Taxes                  decimal.Decimal `json:"taxes"`
	CarRentalValue         decimal.Decimal `json:"carRentalValue"`
	ExpectedClientBilling  decimal.Decimal `json:"expectedClientBilling"`
	ClientPaymentsReceived decimal.Decimal `json:"clientPaymentsReceived"`
	ClientBalancePending   decimal.Decimal `json:"clientBalancePending"`
	AdditionalPayments     decimal.Decimal `json:"additionalPayments"`
	TotalCost              decimal.Decimal `json:"totalCost"`
	NetRevenue             decimal.Decimal `json:"netRevenue"`
	MarginPercent          decimal.Decimal `json:"marginPercent"`
}

// LeaderEarning is the per-leader slice of the leader cost breakdown.
type LeaderEarning struct {
	LeaderID      int64           `json:"leaderId"`
	LeaderName    string          `json:"leaderName"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	RateUsed      decimal.Decimal `json:"rateUsed"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// ParkPeriodSummary is one period's cash position inside a park overview.
type ParkPeriodSummary struct {
	PeriodID      int64           `json:"periodId"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Status        PeriodStatus    `json:"status"`
	Inflow        decimal.Decimal `json:"inflow"`
	Outflow       decimal.Decimal `json:"outflow"`
	Balance       decimal.Decimal `json:"balance"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	TotalServices int             `json:"totalServices"`
	TotalPayments int             `json:"totalPayments"`
}

// ParkOverview aggregates every period of a park, newest first. Totals are
// plain sums over the per-period summaries.
type ParkOverview struct {
	ParkID       int64               `json:"parkId"`
	ParkName     string              `json:"parkName"`
	TotalPeriods int                 `json:"totalPeriods"`
	TotalInflow  decimal.Decimal     `json:"totalInflow"`
	TotalOutflow decimal.Decimal     `json:"totalOutflow"`
	TotalBalance decimal.Decimal     `json:"totalBalance"`
	Periods      []ParkPeriodSummary `json:"periods"`
}

// CarRentalPeriodTotal is the car rental value of a single period.
type CarRentalPeriodTotal struct {
	PeriodID int64           `json:"periodId"`
	ParkID   int64           `json:"parkId"`
	ParkName string          `json:"parkName"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Value    decimal.Decimal `json:"value"`
}

// CarRentalMonthTotal buckets car rental income by calendar month.
type CarRentalMonthTotal struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CarRentalYearTotal buckets car rental income by calendar year.
type CarRentalYearTotal struct {
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total"`
}

// CarRentalSummary aggregates car rental income across periods, optionally
// scoped to one park. Breakdown slices are ordered newest first.
type CarRentalSummary struct {
	ParkID           *int64                 `json:"parkId"`
	ParkName         *string                `json:"parkName"`
	TotalAllTime     decimal.Decimal        `json:"totalAllTime"`
	CurrentYearTotal decimal.Decimal        `json:"currentYearTotal"`
	AnnualTotals     []CarRentalYearTotal   `json:"annualTotals"`
	MonthlyTotals    []CarRentalMonthTotal  `json:"monthlyTotals"`
	PeriodTotals     []CarRentalPeriodTotal `json:"periodTotals"`
}
