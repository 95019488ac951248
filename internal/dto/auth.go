package dto

import "github.com/jvamontagens/assembly_backend/internal/core/domain"

// LoginRequest defines the credentials for a password login. The CPF is
// normalized before lookup, so formatted input is accepted.
type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// ExchangeCodeRequest carries the Google authorization code sent by the
// frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse defines the data returned for a login user.
type UserResponse struct {
	CPF      string `json:"cpf"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		CPF:      u.CPF,
		FullName: u.FullName,
		Email:    u.Email,
	}
}
