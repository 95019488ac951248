package dto

import "github.com/jvamontagens/assembly_backend/internal/core/domain"

// CreateParkRequest defines the data needed to register a park.
type CreateParkRequest struct {
	Name       string `json:"name" binding:"required"`
	City       string `json:"city"`
	State      string `json:"state" binding:"omitempty,len=2"`
	ClientCNPJ string `json:"clientCnpj" binding:"required"`
}

// UpdateParkRequest defines the park fields that can change after creation.
// Supplying a client CNPJ re-parents the park.
type UpdateParkRequest struct {
	Name       *string `json:"name"`
	City       *string `json:"city"`
	State      *string `json:"state" binding:"omitempty,len=2"`
	ClientCNPJ *string `json:"clientCnpj"`
}

// ParkResponse defines the data returned for a park.
type ParkResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	ClientCNPJ string `json:"clientCnpj"`
}

// ToParkResponse converts a domain.Park to its response DTO.
func ToParkResponse(p *domain.Park) ParkResponse {
	return ParkResponse{
		ID:         p.ID,
		Name:       p.Name,
		City:       p.City,
		State:      p.State,
		ClientCNPJ: p.ClientCNPJ,
	}
}

// ToListParkResponse converts a slice of domain.Park to response DTOs.
func ToListParkResponse(parks []domain.Park) []ParkResponse {
	res := make([]ParkResponse, len(parks))
	for i := range parks {
		res[i] = ToParkResponse(&parks[i])
	}
	return res
}
