package dto

import (
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePeriodRequest defines the data needed to open a financial period.
type CreatePeriodRequest struct {
	ParkID              int64                `json:"parkId" binding:"required"`
	Year                int                  `json:"year" binding:"required"`
	Month               int                  `json:"month" binding:"required"`
	JVAPricePerMeter    *decimal.Decimal     `json:"jvaPricePerMeter"`
	LeaderPricePerMeter *decimal.Decimal     `json:"leaderPricePerMeter"`
	TaxRate             *decimal.Decimal     `json:"taxRate"`
	CarRentalValue      *decimal.Decimal     `json:"carRentalValue"`
	Status              *domain.PeriodStatus `json:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	AdministratorID     *int64               `json:"administratorId"`
}

// UpdatePeriodRequest defines the fields of a period that can change after
// creation. Pointers distinguish omitted fields from zero values.
type UpdatePeriodRequest struct {
	JVAPricePerMeter    *decimal.Decimal     `json:"jvaPricePerMeter"`
	LeaderPricePerMeter *decimal.Decimal     `json:"leaderPricePerMeter"`
	TaxRate             *decimal.Decimal     `json:"taxRate"`
	CarRentalValue      *decimal.Decimal     `json:"carRentalValue"`
	Status              *domain.PeriodStatus `json:"status" binding:"omitempty,oneof=OPEN CLOSED"`
}

// PeriodResponse defines the data returned for a financial period.
type PeriodResponse struct {
	ID                  int64               `json:"id"`
	ParkID              int64               `json:"parkId"`
	Year                int                 `json:"year"`
	Month               int                 `json:"month"`
	JVAPricePerMeter    decimal.Decimal     `json:"jvaPricePerMeter"`
	LeaderPricePerMeter decimal.Decimal     `json:"leaderPricePerMeter"`
	TaxRate             decimal.Decimal     `json:"taxRate"`
	CarRentalValue      decimal.Decimal     `json:"carRentalValue"`
	Status              domain.PeriodStatus `json:"status"`
	AdministratorID     *int64              `json:"administratorId"`
}

// ToPeriodResponse converts a domain.Period to its response DTO.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		ID:                  p.ID,
		ParkID:              p.ParkID,
		Year:                p.Year,
		Month:               p.Month,
		JVAPricePerMeter:    p.JVAPricePerMeter,
		LeaderPricePerMeter: p.LeaderPricePerMeter,
		TaxRate:             p.TaxRate,
		CarRentalValue:      p.CarRentalValue,
		Status:              p.Status,
		AdministratorID:     p.AdministratorID,
	}
}

// ToListPeriodResponse converts a slice of domain.Period to response DTOs.
func ToListPeriodResponse(periods []domain.Period) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}
