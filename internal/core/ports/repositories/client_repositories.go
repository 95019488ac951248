package repositories

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByCNPJ retrieves a client by its normalized CNPJ.
	FindClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error)

	// ExistsClient reports whether a client with the given CNPJ exists.
	ExistsClient(ctx context.Context, cnpj string) (bool, error)

	// ListClients retrieves every client, ordered by name.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient inserts a new client. A duplicate CNPJ surfaces as
	// apperrors.ErrDuplicate.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient persists changed client fields.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client and cascades to its parks.
	DeleteClient(ctx context.Context, cnpj string) error
}

// ClientRepository combines all client-related repository interfaces.
type ClientRepository interface {
	ClientReader
	ClientWriter
}
