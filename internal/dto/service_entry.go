package dto

import (
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ServiceHelperInput defines one helper attached to a service entry on create.
type ServiceHelperInput struct {
	EmployeeID    int64            `json:"employeeId" binding:"required"`
	DailyRateUsed *decimal.Decimal `json:"dailyRateUsed"`
	DaysUsed      *int             `json:"daysUsed"`
	TotalCost     *decimal.Decimal `json:"totalCost"`
}

// CreateServiceEntryRequest defines the data needed to record a service entry
// under a period.
type CreateServiceEntryRequest struct {
	ServiceType *domain.ServiceType  `json:"serviceType" binding:"omitempty,oneof=ASSEMBLY DISASSEMBLY MAINTENANCE"`
	TeamType    string               `json:"teamType"`
	LeaderID    *int64               `json:"leaderId"`
	Meters      *decimal.Decimal     `json:"meters" binding:"required"`
	Notes       string               `json:"notes"`
	StartDate   *Date                `json:"startDate"`
	EndDate     *Date                `json:"endDate"`
	Days        *int                 `json:"days"`
	Helpers     []ServiceHelperInput `json:"helpers"`
}

// UpdateServiceEntryRequest defines the fields of a service entry that can be
// changed after creation. Pricing is always re-derived from the period rate.
type UpdateServiceEntryRequest struct {
	ServiceType *domain.ServiceType `json:"serviceType" binding:"omitempty,oneof=ASSEMBLY DISASSEMBLY MAINTENANCE"`
	TeamType    *string             `json:"teamType"`
	LeaderID    *int64              `json:"leaderId"`
	Meters      *decimal.Decimal    `json:"meters"`
	Notes       *string             `json:"notes"`
	StartDate   *Date               `json:"startDate"`
	EndDate     *Date               `json:"endDate"`
	Days        *int                `json:"days"`
}

// ServiceHelperResponse defines the data returned for a service helper.
type ServiceHelperResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employeeId"`
	DailyRateUsed decimal.Decimal `json:"dailyRateUsed"`
	DaysUsed      int             `json:"daysUsed"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}

// ServiceEntryResponse defines the data returned for a service entry.
type ServiceEntryResponse struct {
	ID          int64                   `json:"id"`
	PeriodID    int64                   `json:"periodId"`
	ServiceType domain.ServiceType      `json:"serviceType"`
	TeamType    string                  `json:"teamType"`
	LeaderID    *int64                  `json:"leaderId"`
	Meters      decimal.Decimal         `json:"meters"`
	UnitPrice   decimal.Decimal         `json:"unitPrice"`
	GrossValue  decimal.Decimal         `json:"grossValue"`
	Notes       string                  `json:"notes"`
	StartDate   *Date                   `json:"startDate"`
	EndDate     *Date                   `json:"endDate"`
	Days        *int                    `json:"days"`
	Helpers     []ServiceHelperResponse `json:"helpers"`
}

// ToServiceEntryResponse converts a domain.ServiceEntry to its response DTO.
func ToServiceEntryResponse(e *domain.ServiceEntry) ServiceEntryResponse {
	helpers := make([]ServiceHelperResponse, len(e.Helpers))
	for i, h := range e.Helpers {
		helpers[i] = ServiceHelperResponse{
			ID:            h.ID,
			EmployeeID:    h.EmployeeID,
			DailyRateUsed: h.DailyRateUsed,
			DaysUsed:      h.DaysUsed,
			TotalCost:     h.TotalCost,
		}
	}
	return ServiceEntryResponse{
		ID:          e.ID,
		PeriodID:    e.PeriodID,
		ServiceType: e.ServiceType,
		TeamType:    e.TeamType,
		LeaderID:    e.LeaderID,
		Meters:      e.Meters,
		UnitPrice:   e.UnitPrice,
		GrossValue:  e.GrossValue,
		Notes:       e.Notes,
		StartDate:   DatePtr(e.StartDate),
		EndDate:     DatePtr(e.EndDate),
		Days:        e.Days,
		Helpers:     helpers,
	}
}

// ToListServiceEntryResponse converts a slice of service entries to DTOs.
func ToListServiceEntryResponse(entries []domain.ServiceEntry) []ServiceEntryResponse {
	res := make([]ServiceEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToServiceEntryResponse(&entries[i])
	}
	return res
}
