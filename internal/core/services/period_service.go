package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
	"github.com/jvamontagens/assembly_backend/internal/utils/money"
)

const (
	minPeriodYear = 2020
	maxPeriodYear = 2100
)

// periodService manages the financial period lifecycle: creation against the
// (park, year, month) unique key, partial updates with entry re-pricing, and
// cascading deletion.
type periodService struct {
	periodRepo   portsrepo.PeriodRepository
	parkRepo     portsrepo.ParkReader
	employeeRepo portsrepo.EmployeeReader
	entryRepo    portsrepo.ServiceEntryReader
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(
	periodRepo portsrepo.PeriodRepository,
	parkRepo portsrepo.ParkReader,
	employeeRepo portsrepo.EmployeeReader,
	entryRepo portsrepo.ServiceEntryReader,
) portssvc.PeriodSvcFacade {
	return &periodService{
		periodRepo:   periodRepo,
		parkRepo:     parkRepo,
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod opens a new monthly period for a park.
func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.Period, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if req.Year < minPeriodYear || req.Year > maxPeriodYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", apperrors.ErrValidation, minPeriodYear, maxPeriodYear)
	}

	// Pre-check is advisory only; the unique index is the authoritative guard
	// against concurrent creation.
	exists, err := s.periodRepo.ExistsPeriod(ctx, req.ParkID, req.Year, req.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check period existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: a financial period already exists for this park/month/year", apperrors.ErrDuplicate)
	}

	park, err := s.parkRepo.FindParkByID(ctx, req.ParkID)
	if err != nil {
		return nil, fmt.Errorf("park %d: %w", req.ParkID, err)
	}

	if req.AdministratorID != nil {
		// The reference only has to resolve; any role may administer a period.
		if _, err := s.employeeRepo.FindEmployeeByID(ctx, *req.AdministratorID); err != nil {
			return nil, fmt.Errorf("administrator %d: %w", *req.AdministratorID, err)
		}
	}

	period := domain.Period{
		ParkID:              park.ID,
		Year:                req.Year,
		Month:               req.Month,
		JVAPricePerMeter:    money.ZeroIfNil(req.JVAPricePerMeter),
		LeaderPricePerMeter: money.ZeroIfNil(req.LeaderPricePerMeter),
		TaxRate:             money.NormalizeTaxRate(money.ZeroIfNil(req.TaxRate)),
		CarRentalValue:      money.ZeroIfNil(req.CarRentalValue),
		Status:              domain.PeriodOpen,
		AdministratorID:     req.AdministratorID,
	}
	if req.Status != nil {
		period.Status = *req.Status
	}

	if err := money.RequireNonNegative(period.JVAPricePerMeter, "jvaPricePerMeter"); err != nil {
		return nil, err
	}
	if err := money.RequireNonNegative(period.LeaderPricePerMeter, "leaderPricePerMeter"); err != nil {
		return nil, err
	}
	if err := money.RequireNonNegative(period.TaxRate, "taxRate"); err != nil {
		return nil, err
	}
	if err := money.RequireNonNegative(period.CarRentalValue, "carRentalValue"); err != nil {
		return nil, err
	}

	saved, err := s.periodRepo.SavePeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	logger.Info("Financial period created",
		slog.Int64("period_id", saved.ID),
		slog.Int64("park_id", saved.ParkID),
		slog.Int("year", saved.Year),
		slog.Int("month", saved.Month),
	)
	return saved, nil
}

// GetPeriod retrieves a period by id.
func (s *periodService) GetPeriod(ctx context.Context, periodID int64) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods retrieves periods, newest first, optionally scoped to one park.
func (s *periodService) ListPeriods(ctx context.Context, parkID *int64) ([]domain.Period, error) {
	if parkID != nil {
		return s.periodRepo.ListPeriodsByPark(ctx, *parkID)
	}
	return s.periodRepo.ListPeriods(ctx)
}

// UpdatePeriod applies a partial update to a period. Changing the per-meter
// rate re-prices every service entry of the period in the same transaction;
// raising the leader rate above zero is rejected while any entry lacks a
// leader, so the leader invariant holds for the whole period.
func (s *periodService) UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest) (*domain.Period, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}

	newLeaderRate := period.LeaderPricePerMeter
	if req.LeaderPricePerMeter != nil {
		newLeaderRate = *req.LeaderPricePerMeter
	}

	reprice := false
	if req.JVAPricePerMeter != nil {
		if err := money.RequireNonNegative(*req.JVAPricePerMeter, "jvaPricePerMeter"); err != nil {
			return nil, err
		}
		period.JVAPricePerMeter = *req.JVAPricePerMeter
		reprice = true
	}
	if req.LeaderPricePerMeter != nil {
		if err := money.RequireNonNegative(*req.LeaderPricePerMeter, "leaderPricePerMeter"); err != nil {
			return nil, err
		}
		period.LeaderPricePerMeter = *req.LeaderPricePerMeter
	}
	if req.TaxRate != nil {
		taxRate := money.NormalizeTaxRate(*req.TaxRate)
		if err := money.RequireNonNegative(taxRate, "taxRate"); err != nil {
			return nil, err
		}
		period.TaxRate = taxRate
	}
	if req.CarRentalValue != nil {
		if err := money.RequireNonNegative(*req.CarRentalValue, "carRentalValue"); err != nil {
			return nil, err
		}
		period.CarRentalValue = *req.CarRentalValue
	}
	if req.Status != nil {
		period.Status = *req.Status
	}

	if newLeaderRate.IsPositive() {
		leaderless, err := s.entryRepo.ExistsLeaderlessByPeriod(ctx, periodID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for leaderless entries: %w", err)
		}
		if leaderless {
			return nil, fmt.Errorf("%w: all services must have a leader when leaderPricePerMeter is greater than zero", apperrors.ErrValidation)
		}
	}

	if err := s.periodRepo.UpdatePeriod(ctx, *period, reprice); err != nil {
		return nil, fmt.Errorf("failed to update period %d: %w", periodID, err)
	}

	if reprice {
		logger.Info("Service entries re-priced from period rate",
			slog.Int64("period_id", periodID),
			slog.String("unit_price", period.JVAPricePerMeter.String()),
		)
	}
	return period, nil
}

// DeletePeriod removes a period together with its entries, helpers and
// payments.
func (s *periodService) DeletePeriod(ctx context.Context, periodID int64) error {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return fmt.Errorf("period %d: %w", periodID, err)
	}
	return s.periodRepo.DeletePeriod(ctx, periodID)
}
