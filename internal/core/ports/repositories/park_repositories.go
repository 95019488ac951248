package repositories

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// ParkReader defines read operations for park data
type ParkReader interface {
	// FindParkByID retrieves a specific park by id.
	FindParkByID(ctx context.Context, parkID int64) (*domain.Park, error)

	// ListParks retrieves parks, optionally filtered by owning client CNPJ,
	// ordered by name.
	ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error)
}

// ParkWriter defines write operations for park data
type ParkWriter interface {
	// SavePark inserts a new park and returns it with its generated id.
	SavePark(ctx context.Context, park domain.Park) (*domain.Park, error)

	// UpdatePark persists changed park fields.
	UpdatePark(ctx context.Context, park domain.Park) error

	// DeletePark removes a park and cascades to its periods.
	DeletePark(ctx context.Context, parkID int64) error
}

// ParkRepository combines all park-related repository interfaces.
type ParkRepository interface {
	ParkReader
	ParkWriter
}
