package services

import (
	"context"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/jvamontagens/assembly_backend/internal/dto"
)

// ClientSvcFacade manages client records keyed by normalized CNPJ.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, cnpj string, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, cnpj string) error
}

// ParkSvcFacade manages park records.
type ParkSvcFacade interface {
	CreatePark(ctx context.Context, req dto.CreateParkRequest) (*domain.Park, error)
	GetPark(ctx context.Context, parkID int64) (*domain.Park, error)
	ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error)
	UpdatePark(ctx context.Context, parkID int64, req dto.UpdateParkRequest) (*domain.Park, error)
	DeletePark(ctx context.Context, parkID int64) error
}

// EmployeeSvcFacade manages employee records with role-dependent validation.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
}

// UserSvcFacade manages login credentials.
type UserSvcFacade interface {
	// GetUserByCPF retrieves a user by normalized CPF.
	GetUserByCPF(ctx context.Context, cpf string) (*domain.User, error)

	// GetUserByEmail retrieves a user by login email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Authenticate verifies CPF + password and returns the user.
	Authenticate(ctx context.Context, cpf string, password string) (*domain.User, error)

	// StoreRefreshToken persists the hash of a freshly issued refresh token.
	StoreRefreshToken(ctx context.Context, cpf string, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken invalidates a user's refresh token on logout.
	ClearRefreshToken(ctx context.Context, cpf string) error
}
