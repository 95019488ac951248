package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceEntry represents a row of the service_entries table.
type ServiceEntry struct {
	ID          int64           `db:"id"`
	PeriodID    int64           `db:"period_id"`
	ServiceType string          `db:"service_type"`
	TeamType    string          `db:"team_type"`
	LeaderID    *int64          `db:"leader_id"`
	Meters      decimal.Decimal `db:"meters"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	GrossValue  decimal.Decimal `db:"gross_value"`
	Notes       string          `db:"notes"`
	StartDate   *time.Time      `db:"start_date"`
	EndDate     *time.Time      `db:"end_date"`
	Days        *int            `db:"days"`
}

// ServiceHelper represents a row of the service_helpers table, one per
// assembler attached to a service entry.
type ServiceHelper struct {
	ID             int64           `db:"id"`
	ServiceEntryID int64           `db:"service_entry_id"`
	EmployeeID     int64           `db:"employee_id"`
	DailyRateUsed  decimal.Decimal `db:"daily_rate_used"`
	DaysUsed       int             `db:"days_used"`
	TotalCost      decimal.Decimal `db:"total_cost"`
}
