package repositories

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by id.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves multiple employees keyed by id.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []int64) (map[int64]domain.Employee, error)

	// ListEmployees retrieves employees, optionally filtered by role and/or
	// restricted to active ones, ordered by name.
	ListEmployees(ctx context.Context, role *domain.JobRole, onlyActive bool) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee inserts a new employee and returns it with its generated id.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee persists changed employee fields.
	UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
}

// EmployeeRepository combines all employee-related repository interfaces.
type EmployeeRepository interface {
	EmployeeReader
	EmployeeWriter
}
