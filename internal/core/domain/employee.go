package domain

import (
	"fmt"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// JobRole classifies an employee within an assembly crew.
type JobRole string

const (
	RoleAdministrator JobRole = "ADMINISTRATOR"
	RoleLeader        JobRole = "LEADER"
	RoleAssembler     JobRole = "ASSEMBLER"
)

// Employee represents one worker. The role tag decides which compensation
// field is mandatory: assemblers are paid a daily rate, leaders a per-meter
// rate that overrides the period's leader rate when positive.
type Employee struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	CPF           string           `json:"cpf"` // normalized 11 digits, empty when unset
	PixKey        string           `json:"pixKey"`
	GovEmail      string           `json:"govEmail"`
	GovPassword   string           `json:"-"`
	Role          JobRole          `json:"role"`
	DailyRate     *decimal.Decimal `json:"dailyRate"`
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"`
	Active        bool             `json:"active"`
}

// Validate enforces the role-dependent required fields in one place. The
// Employee record is flat (it persists as one row), so the union-like rules
// live here instead of scattered nil checks.
func (e Employee) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: employee name is required", apperrors.ErrValidation)
	}
	switch e.Role {
	case RoleAdministrator, RoleLeader, RoleAssembler:
	default:
		return fmt.Errorf("%w: unknown employee role %q", apperrors.ErrValidation, e.Role)
	}
	if e.Role == RoleAssembler && e.DailyRate == nil {
		return fmt.Errorf("%w: dailyRate is required for ASSEMBLER", apperrors.ErrValidation)
	}
	if e.Role == RoleLeader && e.PricePerMeter == nil {
		return fmt.Errorf("%w: pricePerMeter is required for LEADER", apperrors.ErrValidation)
	}
	if e.DailyRate != nil && e.DailyRate.IsNegative() {
		return fmt.Errorf("%w: dailyRate cannot be negative", apperrors.ErrValidation)
	}
	if e.PricePerMeter != nil && e.PricePerMeter.IsNegative() {
		return fmt.Errorf("%w: pricePerMeter cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// LeaderRateOverride returns the employee's per-meter rate when it is set and
// positive, signalling that it takes precedence over the period's leader rate.
func (e Employee) LeaderRateOverride() (decimal.Decimal, bool) {
	if e.PricePerMeter != nil && e.PricePerMeter.IsPositive() {
		return *e.PricePerMeter, true
	}
	return decimal.Zero, false
}
