package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
	"github.com/jvamontagens/assembly_backend/internal/utils/document"
)

// clientService manages client records keyed by normalized CNPJ.
type clientService struct {
	clientRepo portsrepo.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a new client. The CNPJ is normalized to its 14
// digits before it becomes the record key.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cnpj, err := document.NormalizeCNPJ(req.CNPJ)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	client := domain.Client{
		CNPJ:         cnpj,
		Name:         strings.TrimSpace(req.Name),
		ContactPhone: req.ContactPhone,
		Email:        req.Email,
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client %s: %w", cnpj, err)
	}

	logger.Info("Client registered", slog.String("cnpj", cnpj), slog.String("name", client.Name))
	return &client, nil
}

// GetClientByCNPJ retrieves a client by CNPJ.
func (s *clientService) GetClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error) {
	normalized, err := document.NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByCNPJ(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", normalized, err)
	}
	return client, nil
}

// ListClients retrieves every client.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx)
}

// UpdateClient applies a partial update to a client.
func (s *clientService) UpdateClient(ctx context.Context, cnpj string, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetClientByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.ContactPhone != nil {
		client.ContactPhone = *req.ContactPhone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", client.CNPJ, err)
	}
	return client, nil
}

// DeleteClient removes a client and, through the schema, its parks and their
// periods.
func (s *clientService) DeleteClient(ctx context.Context, cnpj string) error {
	client, err := s.GetClientByCNPJ(ctx, cnpj)
	if err != nil {
		return err
	}
	return s.clientRepo.DeleteClient(ctx, client.CNPJ)
}
