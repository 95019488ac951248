package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
	"github.com/jvamontagens/assembly_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// serviceEntryService validates and persists service entries against their
// parent period, deriving pricing from the period's current per-meter rate.
type serviceEntryService struct {
	entryRepo    portsrepo.ServiceEntryRepository
	periodRepo   portsrepo.PeriodReader
	employeeRepo portsrepo.EmployeeReader
}

// NewServiceEntryService creates a new ServiceEntryService.
func NewServiceEntryService(
	entryRepo portsrepo.ServiceEntryRepository,
	periodRepo portsrepo.PeriodReader,
	employeeRepo portsrepo.EmployeeReader,
) portssvc.ServiceEntrySvcFacade {
	return &serviceEntryService{
		entryRepo:    entryRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.ServiceEntrySvcFacade = (*serviceEntryService)(nil)

// requireEmployeeRole checks that an employee carries the expected role and is
// active. The ref string names the reference in error messages.
func requireEmployeeRole(employee *domain.Employee, expected domain.JobRole, ref string) error {
	if employee.Role != expected {
		return fmt.Errorf("%w: %s must have role %s", apperrors.ErrValidation, ref, expected)
	}
	if !employee.Active {
		return fmt.Errorf("%w: %s must be active", apperrors.ErrValidation, ref)
	}
	return nil
}

// resolveLeader resolves the optional leader of a service entry. A missing or
// non-positive id is allowed only while the period does not require a leader.
func (s *serviceEntryService) resolveLeader(ctx context.Context, period *domain.Period, leaderID *int64) (*int64, error) {
	if leaderID == nil || *leaderID <= 0 {
		if period.RequiresLeader() {
			return nil, fmt.Errorf("%w: leaderId is required when leaderPricePerMeter is greater than zero", apperrors.ErrValidation)
		}
		return nil, nil
	}

	leader, err := s.employeeRepo.FindEmployeeByID(ctx, *leaderID)
	if err != nil {
		return nil, fmt.Errorf("leader %d: %w", *leaderID, err)
	}
	if err := requireEmployeeRole(leader, domain.RoleLeader, "leader"); err != nil {
		return nil, err
	}
	return &leader.ID, nil
}

// inclusiveDays returns the day count of a closed date range, or nil when
// either bound is missing.
func inclusiveDays(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	days := int(end.Sub(*start).Hours()/24) + 1
	return &days
}

// AddServiceEntry records a new service entry with its helpers under a period.
func (s *serviceEntryService) AddServiceEntry(ctx context.Context, periodID int64, req dto.CreateServiceEntryRequest) (*domain.ServiceEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}

	leaderID, err := s.resolveLeader(ctx, period, req.LeaderID)
	if err != nil {
		return nil, err
	}

	meters := money.ZeroIfNil(req.Meters)
	if err := money.RequirePositive(meters, "meters"); err != nil {
		return nil, err
	}
	unitPrice := period.JVAPricePerMeter
	grossValue := money.Round2(meters.Mul(unitPrice))

	days := req.Days
	if days == nil {
		days = inclusiveDays(dto.TimePtr(req.StartDate), dto.TimePtr(req.EndDate))
	}
	if days != nil && *days < 0 {
		return nil, fmt.Errorf("%w: days cannot be negative", apperrors.ErrValidation)
	}

	entry := domain.ServiceEntry{
		PeriodID:    period.ID,
		ServiceType: domain.ServiceAssembly,
		TeamType:    domain.DefaultTeamType,
		LeaderID:    leaderID,
		Meters:      meters,
		UnitPrice:   unitPrice,
		GrossValue:  grossValue,
		Notes:       req.Notes,
		StartDate:   dto.TimePtr(req.StartDate),
		EndDate:     dto.TimePtr(req.EndDate),
		Days:        days,
	}
	if req.ServiceType != nil {
		entry.ServiceType = *req.ServiceType
	}
	if strings.TrimSpace(req.TeamType) != "" {
		entry.TeamType = req.TeamType
	}

	for _, helperReq := range req.Helpers {
		helper, err := s.buildHelper(ctx, helperReq, days)
		if err != nil {
			return nil, err
		}
		entry.Helpers = append(entry.Helpers, *helper)
	}

	saved, err := s.entryRepo.SaveServiceEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save service entry: %w", err)
	}

	logger.Info("Service entry recorded",
		slog.Int64("entry_id", saved.ID),
		slog.Int64("period_id", periodID),
		slog.String("gross_value", saved.GrossValue.String()),
		slog.Int("helpers", len(saved.Helpers)),
	)
	return saved, nil
}

// buildHelper resolves one helper input against the employee registry and
// fills in the rate, day and cost defaults.
func (s *serviceEntryService) buildHelper(ctx context.Context, req dto.ServiceHelperInput, entryDays *int) (*domain.ServiceHelper, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("helper employee %d: %w", req.EmployeeID, err)
	}
	if err := requireEmployeeRole(employee, domain.RoleAssembler, "helper employee"); err != nil {
		return nil, err
	}

	dailyRateUsed := money.ZeroIfNil(employee.DailyRate)
	if req.DailyRateUsed != nil {
		dailyRateUsed = *req.DailyRateUsed
	}

	daysUsed := 0
	if req.DaysUsed != nil {
		daysUsed = *req.DaysUsed
	} else if entryDays != nil {
		daysUsed = *entryDays
	}
	if daysUsed < 0 {
		return nil, fmt.Errorf("%w: daysUsed cannot be negative", apperrors.ErrValidation)
	}

	totalCost := money.Round2(dailyRateUsed.Mul(decimal.NewFromInt(int64(daysUsed))))
	if req.TotalCost != nil {
		totalCost = *req.TotalCost
	}

	if err := money.RequireNonNegative(dailyRateUsed, "dailyRateUsed"); err != nil {
		return nil, err
	}
	if err := money.RequireNonNegative(totalCost, "totalCost"); err != nil {
		return nil, err
	}

	return &domain.ServiceHelper{
		EmployeeID:    employee.ID,
		DailyRateUsed: dailyRateUsed,
		DaysUsed:      daysUsed,
		TotalCost:     totalCost,
	}, nil
}

// ListServiceEntries retrieves a period's service entries.
func (s *serviceEntryService) ListServiceEntries(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}
	return s.entryRepo.ListServiceEntriesByPeriod(ctx, periodID)
}

// UpdateServiceEntry applies a partial update. Unit price and gross value are
// always re-derived from the period's current rate, so entries never retain a
// stale price.
func (s *serviceEntryService) UpdateServiceEntry(ctx context.Context, entryID int64, req dto.UpdateServiceEntryRequest) (*domain.ServiceEntry, error) {
	entry, err := s.entryRepo.FindServiceEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("service entry %d: %w", entryID, err)
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, entry.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("period %d: %w", entry.PeriodID, err)
	}

	if req.ServiceType != nil {
		entry.ServiceType = *req.ServiceType
	}
	if req.TeamType != nil {
		entry.TeamType = *req.TeamType
	}
	if req.LeaderID != nil {
		leaderID, err := s.resolveLeader(ctx, period, req.LeaderID)
		if err != nil {
			return nil, err
		}
		entry.LeaderID = leaderID
	}
	if req.Meters != nil {
		if err := money.RequirePositive(*req.Meters, "meters"); err != nil {
			return nil, err
		}
		entry.Meters = *req.Meters
	}

	entry.UnitPrice = period.JVAPricePerMeter
	entry.GrossValue = money.Round2(entry.Meters.Mul(entry.UnitPrice))

	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.StartDate != nil {
		entry.StartDate = dto.TimePtr(req.StartDate)
	}
	if req.EndDate != nil {
		entry.EndDate = dto.TimePtr(req.EndDate)
	}
	if req.Days != nil {
		if *req.Days < 0 {
			return nil, fmt.Errorf("%w: days cannot be negative", apperrors.ErrValidation)
		}
		entry.Days = req.Days
	}

	if entry.LeaderID == nil && period.RequiresLeader() {
		return nil, fmt.Errorf("%w: leaderId is required when leaderPricePerMeter is greater than zero", apperrors.ErrValidation)
	}

	return s.entryRepo.UpdateServiceEntry(ctx, *entry)
}

// DeleteServiceEntry removes an entry and its helpers.
func (s *serviceEntryService) DeleteServiceEntry(ctx context.Context, entryID int64) error {
	if _, err := s.entryRepo.FindServiceEntryByID(ctx, entryID); err != nil {
		return fmt.Errorf("service entry %d: %w", entryID, err)
	}
	return s.entryRepo.DeleteServiceEntry(ctx, entryID)
}
