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

// parkService manages park records and their client ownership.
type parkService struct {
	parkRepo   portsrepo.ParkRepository
	clientRepo portsrepo.ClientReader
}

// NewParkService creates a new ParkService.
func NewParkService(parkRepo portsrepo.ParkRepository, clientRepo portsrepo.ClientReader) portssvc.ParkSvcFacade {
	return &parkService{parkRepo: parkRepo, clientRepo: clientRepo}
}

var _ portssvc.ParkSvcFacade = (*parkService)(nil)

// resolveOwner normalizes the CNPJ and confirms the owning client exists.
func (s *parkService) resolveOwner(ctx context.Context, rawCNPJ string) (string, error) {
	cnpj, err := document.NormalizeCNPJ(rawCNPJ)
	if err != nil {
		return "", err
	}
	client, err := s.clientRepo.FindClientByCNPJ(ctx, cnpj)
	if err != nil {
		return "", fmt.Errorf("client %s: %w", cnpj, err)
	}
	return client.CNPJ, nil
}

// CreatePark registers a new park under an existing client.
func (s *parkService) CreatePark(ctx context.Context, req dto.CreateParkRequest) (*domain.Park, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ownerCNPJ, err := s.resolveOwner(ctx, req.ClientCNPJ)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: park name is required", apperrors.ErrValidation)
	}

	park := domain.Park{
		Name:       strings.TrimSpace(req.Name),
		City:       req.City,
		State:      strings.ToUpper(req.State),
		ClientCNPJ: ownerCNPJ,
	}
	saved, err := s.parkRepo.SavePark(ctx, park)
	if err != nil {
		return nil, fmt.Errorf("failed to save park: %w", err)
	}

	logger.Info("Park registered",
		slog.Int64("park_id", saved.ID),
		slog.String("name", saved.Name),
		slog.String("client_cnpj", saved.ClientCNPJ),
	)
	return saved, nil
}

// GetPark retrieves a park by id.
func (s *parkService) GetPark(ctx context.Context, parkID int64) (*domain.Park, error) {
	park, err := s.parkRepo.FindParkByID(ctx, parkID)
	if err != nil {
		return nil, fmt.Errorf("park %d: %w", parkID, err)
	}
	return park, nil
}

// ListParks retrieves parks, optionally restricted to one client.
func (s *parkService) ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error) {
	if clientCNPJ == nil || strings.TrimSpace(*clientCNPJ) == "" {
		return s.parkRepo.ListParks(ctx, nil)
	}
	normalized, err := document.NormalizeCNPJ(*clientCNPJ)
	if err != nil {
		return nil, err
	}
	return s.parkRepo.ListParks(ctx, &normalized)
}

// UpdatePark applies a partial update. Supplying a client CNPJ re-parents the
// park onto that client.
func (s *parkService) UpdatePark(ctx context.Context, parkID int64, req dto.UpdateParkRequest) (*domain.Park, error) {
	park, err := s.GetPark(ctx, parkID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		park.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		park.City = *req.City
	}
	if req.State != nil {
		park.State = strings.ToUpper(*req.State)
	}
	if req.ClientCNPJ != nil {
		ownerCNPJ, err := s.resolveOwner(ctx, *req.ClientCNPJ)
		if err != nil {
			return nil, err
		}
		park.ClientCNPJ = ownerCNPJ
	}

	if err := s.parkRepo.UpdatePark(ctx, *park); err != nil {
		return nil, fmt.Errorf("failed to update park %d: %w", parkID, err)
	}
	return park, nil
}

// DeletePark removes a park and, through the schema, its periods and entries.
func (s *parkService) DeletePark(ctx context.Context, parkID int64) error {
	if _, err := s.GetPark(ctx, parkID); err != nil {
		return err
	}
	return s.parkRepo.DeletePark(ctx, parkID)
}
