package services

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/jvamontagens/assembly_backend/internal/dto"
)

// PeriodReaderSvc defines read operations on financial periods.
type PeriodReaderSvc interface {
	// GetPeriod retrieves a period by id.
	GetPeriod(ctx context.Context, periodID int64) (*domain.Period, error)

	// ListPeriods retrieves all periods, optionally restricted to one park,
	// newest first.
	ListPeriods(ctx context.Context, parkID *int64) ([]domain.Period, error)
}

// PeriodWriterSvc defines lifecycle operations on financial periods.
type PeriodWriterSvc interface {
	// CreatePeriod opens a new monthly period for a park. At most one period
	// may exist per (park, year, month); a duplicate fails with ErrDuplicate.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.Period, error)

	// UpdatePeriod applies a partial update. A changed per-meter rate re-prices
	// every service entry of the period atomically, and raising the leader rate
	// above zero fails while any entry lacks a leader.
	UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest) (*domain.Period, error)

	// DeletePeriod removes a period and everything recorded under it.
	DeletePeriod(ctx context.Context, periodID int64) error
}

// PeriodSvcFacade combines all period-related service interfaces.
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}
