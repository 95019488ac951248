package dto

import "github.com/jvamontagens/assembly_backend/internal/core/domain"

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	CNPJ         string `json:"cnpj" binding:"required,cnpj"`
	Name         string `json:"name" binding:"required"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest defines the client fields that can change after creation.
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	ContactPhone *string `json:"contactPhone"`
	Email        *string `json:"email" binding:"omitempty,email"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	CNPJ         string `json:"cnpj"`
	Name         string `json:"name"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		CNPJ:         c.CNPJ,
		Name:         c.Name,
		ContactPhone: c.ContactPhone,
		Email:        c.Email,
	}
}

// ToListClientResponse converts a slice of domain.Client to response DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
