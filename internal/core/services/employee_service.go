package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
	"github.com/jvamontagens/assembly_backend/internal/utils"
	"github.com/jvamontagens/assembly_backend/internal/utils/document"
)

// employeeService manages employee records. Administrators with gov
// credentials get a matching login user kept in sync on every write.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepository
	userRepo     portsrepo.UserRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository, userRepo portsrepo.UserRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo, userRepo: userRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee registers an employee. Role-dependent rate requirements are
// enforced by domain validation.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee := domain.Employee{
		Name:          strings.TrimSpace(req.Name),
		PixKey:        req.PixKey,
		GovEmail:      req.GovEmail,
		GovPassword:   req.GovPassword,
		Role:          req.Role,
		DailyRate:     req.DailyRate,
		PricePerMeter: req.PricePerMeter,
		Active:        true,
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}
	if strings.TrimSpace(req.CPF) != "" {
		cpf, err := document.NormalizeCPF(req.CPF)
		if err != nil {
			return nil, err
		}
		employee.CPF = cpf
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	if err := s.syncAdministratorUser(ctx, saved); err != nil {
		return nil, err
	}

	logger.Info("Employee registered",
		slog.Int64("employee_id", saved.ID),
		slog.String("role", string(saved.Role)),
	)
	return saved, nil
}

// GetEmployee retrieves an employee by id.
func (s *employeeService) GetEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("employee %d: %w", employeeID, err)
	}
	return employee, nil
}

// ListEmployees retrieves employees matching the given filters.
func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx, params.Role, params.OnlyActive)
}

// UpdateEmployee applies a partial update, re-running domain validation on the
// merged record.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.CPF != nil {
		if strings.TrimSpace(*req.CPF) == "" {
			employee.CPF = ""
		} else {
			cpf, err := document.NormalizeCPF(*req.CPF)
			if err != nil {
				return nil, err
			}
			employee.CPF = cpf
		}
	}
	if req.PixKey != nil {
		employee.PixKey = *req.PixKey
	}
	if req.GovEmail != nil {
		employee.GovEmail = *req.GovEmail
	}
	if req.GovPassword != nil {
		employee.GovPassword = *req.GovPassword
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.DailyRate != nil {
		employee.DailyRate = req.DailyRate
	}
	if req.PricePerMeter != nil {
		employee.PricePerMeter = req.PricePerMeter
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.employeeRepo.UpdateEmployee(ctx, *employee)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", employeeID, err)
	}

	if err := s.syncAdministratorUser(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// syncAdministratorUser creates or refreshes the login user of an
// administrator that carries a CPF and gov credentials. Passwords already in
// bcrypt form are stored as-is.
func (s *employeeService) syncAdministratorUser(ctx context.Context, employee *domain.Employee) error {
	if employee.Role != domain.RoleAdministrator || employee.CPF == "" || employee.GovEmail == "" || employee.GovPassword == "" {
		return nil
	}

	passwordHash := employee.GovPassword
	if !utils.IsBcryptHash(passwordHash) {
		hashed, err := utils.HashPassword(passwordHash)
		if err != nil {
			return fmt.Errorf("failed to hash administrator password: %w", err)
		}
		passwordHash = hashed
	}

	user := domain.User{
		CPF:          employee.CPF,
		FullName:     employee.Name,
		Email:        employee.GovEmail,
		PasswordHash: passwordHash,
	}

	existing, err := s.userRepo.FindUserByCPF(ctx, employee.CPF)
	switch {
	case err == nil:
		user.RefreshTokenHash = existing.RefreshTokenHash
		user.RefreshTokenExpiryTime = existing.RefreshTokenExpiryTime
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to refresh administrator login %s: %w", employee.CPF, err)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		if err := s.userRepo.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create administrator login %s: %w", employee.CPF, err)
		}
	default:
		return fmt.Errorf("administrator login %s: %w", employee.CPF, err)
	}
	return nil
}
