package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType classifies the kind of work performed in a service entry.
type ServiceType string

const (
	ServiceAssembly    ServiceType = "ASSEMBLY"
	ServiceDisassembly ServiceType = "DISASSEMBLY"
	ServiceMaintenance ServiceType = "MAINTENANCE"
)

// DefaultTeamType is used when a service entry is recorded without a team.
const DefaultTeamType = "UNSPECIFIED"

// ServiceEntry is one billable unit of work within a period, priced per meter
// at the period's current rate. It owns its helpers.
type ServiceEntry struct {
	ID          int64           `json:"id"`
	PeriodID    int64           `json:"periodId"`
	ServiceType ServiceType     `json:"serviceType"`
	TeamType    string          `json:"teamType"`
	LeaderID    *int64          `json:"leaderId"`
	Meters      decimal.Decimal `json:"meters"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`  // always the period's rate at last write
	GrossValue  decimal.Decimal `json:"grossValue"` // meters × unitPrice, 2 decimals half-up
	Notes       string          `json:"notes"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Days        *int            `json:"days"`
	Helpers     []ServiceHelper `json:"helpers"`
}

// ServiceHelper is one assembler's cost contribution to a service entry.
type ServiceHelper struct {
	ID             int64           `json:"id"`
	ServiceEntryID int64           `json:"serviceEntryId"`
	EmployeeID     int64           `json:"employeeId"`
	DailyRateUsed  decimal.Decimal `json:"dailyRateUsed"`
	DaysUsed       int             `json:"daysUsed"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}
