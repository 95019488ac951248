package repositories

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// PeriodReader defines read operations for financial period data
type PeriodReader interface {
	// FindPeriodByID retrieves a specific period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID int64) (*domain.Period, error)

	// ListPeriods retrieves every period, ordered by year and month descending.
	ListPeriods(ctx context.Context) ([]domain.Period, error)

	// ListPeriodsByPark retrieves a park's periods, ordered by year and month descending.
	ListPeriodsByPark(ctx context.Context, parkID int64) ([]domain.Period, error)

	// ExistsPeriod reports whether a period already exists for (park, year, month).
	ExistsPeriod(ctx context.Context, parkID int64, year int, month int) (bool, error)
}

// PeriodWriter defines write operations for financial period data
type PeriodWriter interface {
	// SavePeriod inserts a new period and returns it with its generated id.
	// A (park, year, month) uniqueness violation surfaces as apperrors.ErrDuplicate.
	SavePeriod(ctx context.Context, period domain.Period) (*domain.Period, error)

	// UpdatePeriod persists changed period fields. When repriceEntries is set,
	// every service entry of the period has its unit price and gross value
	// recomputed from the period's rate inside the same transaction.
	UpdatePeriod(ctx context.Context, period domain.Period, repriceEntries bool) error

	// DeletePeriod removes a period together with its service entries, helpers
	// and payment entries.
	DeletePeriod(ctx context.Context, periodID int64) error
}

// PeriodRepository combines all period-related repository interfaces.
type PeriodRepository interface {
	PeriodReader
	PeriodWriter
}
