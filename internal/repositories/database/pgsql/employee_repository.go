package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	"github.com/jvamontagens/assembly_backend/internal/models"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

const employeeColumns = `id, name, cpf, pix_key, gov_email, gov_password, role, daily_rate, price_per_meter, active`

func toDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:            m.ID,
		Name:          m.Name,
		CPF:           m.CPF,
		PixKey:        m.PixKey,
		GovEmail:      m.GovEmail,
		GovPassword:   m.GovPassword,
		Role:          domain.JobRole(m.Role),
		DailyRate:     m.DailyRate,
		PricePerMeter: m.PricePerMeter,
		Active:        m.Active,
	}
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.CPF,
		&m.PixKey,
		&m.GovEmail,
		&m.GovPassword,
		&m.Role,
		&m.DailyRate,
		&m.PricePerMeter,
		&m.Active,
	)
	return m, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	query := `
		INSERT INTO employees (name, cpf, pix_key, gov_email, gov_password, role, daily_rate, price_per_meter, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		employee.Name,
		employee.CPF,
		employee.PixKey,
		employee.GovEmail,
		employee.GovPassword,
		string(employee.Role),
		employee.DailyRate,
		employee.PricePerMeter,
		employee.Active,
	).Scan(&employee.ID)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("employee %q", employee.Name))
	}
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %d: %w", employeeID, err)
	}
	employee := toDomainEmployee(m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []int64) (map[int64]domain.Employee, error) {
	result := make(map[int64]domain.Employee, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result[m.ID] = toDomainEmployee(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return result, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, role *domain.JobRole, onlyActive bool) ([]domain.Employee, error) {
	var roleFilter *string
	if role != nil {
		s := string(*role)
		roleFilter = &s
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1::text IS NULL OR role = $1)
		  AND ($2::boolean = false OR active)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, roleFilter, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, toDomainEmployee(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	query := `
		UPDATE employees
		SET name = $2, cpf = $3, pix_key = $4, gov_email = $5, gov_password = $6,
		    role = $7, daily_rate = $8, price_per_meter = $9, active = $10
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.CPF,
		employee.PixKey,
		employee.GovEmail,
		employee.GovPassword,
		string(employee.Role),
		employee.DailyRate,
		employee.PricePerMeter,
		employee.Active,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("employee %d", employee.ID))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employee, nil
}
