package domain

import "github.com/shopspring/decimal"

// PeriodStatus indicates the lifecycle state of a financial period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// Period is one park's monthly financial accounting window and the aggregate
// root for service and payment entries. At most one period exists per
// (park, year, month).
type Period struct {
	ID                  int64           `json:"id"`
	ParkID              int64           `json:"parkId"`
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	JVAPricePerMeter    decimal.Decimal `json:"jvaPricePerMeter"`
	LeaderPricePerMeter decimal.Decimal `json:"leaderPricePerMeter"`
	TaxRate             decimal.Decimal `json:"taxRate"` // stored as a fraction in [0,1]
	CarRentalValue      decimal.Decimal `json:"carRentalValue"`
	Status              PeriodStatus    `json:"status"`
	AdministratorID     *int64          `json:"administratorId"`
}

// RequiresLeader reports whether every service entry under this period must
// carry a leader, which is the case once the period-wide leader rate is
// positive.
func (p Period) RequiresLeader() bool {
	return p.LeaderPricePerMeter.IsPositive()
}

// LeaderRateFor resolves the effective leader rate for a service led by the
// given employee: the per-employee override wins when positive, otherwise the
// period-wide rate applies.
func (p Period) LeaderRateFor(leader Employee) decimal.Decimal {
	if rate, ok := leader.LeaderRateOverride(); ok {
		return rate
	}
	return p.LeaderPricePerMeter
}
