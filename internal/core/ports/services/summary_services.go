package services

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// SummarySvcFacade derives financial figures from recorded entries. All
// operations are read-only.
type SummarySvcFacade interface {
	// CalculateSummary computes the full financial summary of one period.
	CalculateSummary(ctx context.Context, periodID int64) (*domain.FinancialSummary, error)

	// CalculateParkOverview composes per-period summaries for every period of
	// a park, newest first, with park-wide totals.
	CalculateParkOverview(ctx context.Context, parkID int64) (*domain.ParkOverview, error)

	// SummarizeCarRental aggregates car rental income per period, month and
	// year, optionally scoped to one park.
	SummarizeCarRental(ctx context.Context, parkID *int64) (*domain.CarRentalSummary, error)
}
