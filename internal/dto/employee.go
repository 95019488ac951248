package dto

import (
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
// Role-dependent rate requirements are enforced by the domain, not here.
type CreateEmployeeRequest struct {
	Name          string           `json:"name" binding:"required"`
	CPF           string           `json:"cpf" binding:"omitempty,cpf"`
	PixKey        string           `json:"pixKey"`
	GovEmail      string           `json:"govEmail" binding:"omitempty,email"`
	GovPassword   string           `json:"govPassword"`
	Role          domain.JobRole   `json:"role" binding:"required,oneof=ADMINISTRATOR LEADER ASSEMBLER"`
	DailyRate     *decimal.Decimal `json:"dailyRate"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	Active        *bool            `json:"active"`
}

// UpdateEmployeeRequest defines the employee fields that can change.
type UpdateEmployeeRequest struct {
	Name          *string          `json:"name"`
	CPF           *string          `json:"cpf"`
	PixKey        *string          `json:"pixKey"`
	GovEmail      *string          `json:"govEmail" binding:"omitempty,email"`
	GovPassword   *string          `json:"govPassword"`
	Role          *domain.JobRole  `json:"role" binding:"omitempty,oneof=ADMINISTRATOR LEADER ASSEMBLER"`
	DailyRate     *decimal.Decimal `json:"dailyRate"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	Active        *bool            `json:"active"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Role       *domain.JobRole `form:"role" binding:"omitempty,oneof=ADMINISTRATOR LEADER ASSEMBLER"`
	OnlyActive bool            `form:"onlyActive,default=false"`
}

// EmployeeResponse defines the data returned for an employee. Gov credentials
// are never echoed back.
type EmployeeResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	CPF           string           `json:"cpf"`
	PixKey        string           `json:"pixKey"`
	GovEmail      string           `json:"govEmail"`
	Role          domain.JobRole   `json:"role"`
	DailyRate     *decimal.Decimal `json:"dailyRate"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	Active        bool             `json:"active"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		CPF:           e.CPF,
		PixKey:        e.PixKey,
		GovEmail:      e.GovEmail,
		Role:          e.Role,
		DailyRate:     e.DailyRate,
		PricePerMeter: e.PricePerMeter,
		Active:        e.Active,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
