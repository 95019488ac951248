package repositories

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// ServiceEntryReader defines read operations for service entry data
type ServiceEntryReader interface {
	// FindServiceEntryByID retrieves a service entry together with its helpers.
	FindServiceEntryByID(ctx context.Context, entryID int64) (*domain.ServiceEntry, error)

	// ListServiceEntriesByPeriod retrieves all service entries of a period,
	// helpers included, ordered by id.
	ListServiceEntriesByPeriod(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error)

	// ExistsLeaderlessByPeriod reports whether any service entry of the period
	// has no leader assigned.
	ExistsLeaderlessByPeriod(ctx context.Context, periodID int64) (bool, error)
}

// ServiceEntryWriter defines write operations for service entry data
type ServiceEntryWriter interface {
	// SaveServiceEntry inserts an entry and its helpers atomically and returns
	// the entry with generated ids.
	SaveServiceEntry(ctx context.Context, entry domain.ServiceEntry) (*domain.ServiceEntry, error)

	// UpdateServiceEntry persists changed entry fields. Helpers are not touched.
	UpdateServiceEntry(ctx context.Context, entry domain.ServiceEntry) (*domain.ServiceEntry, error)

	// DeleteServiceEntry removes an entry and its helpers.
	DeleteServiceEntry(ctx context.Context, entryID int64) error
}

// ServiceEntryRepository combines all service-entry repository interfaces.
type ServiceEntryRepository interface {
	ServiceEntryReader
	ServiceEntryWriter
}
