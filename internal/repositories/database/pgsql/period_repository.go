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

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(db *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

const periodColumns = `id, park_id, year, month, jva_price_per_meter, leader_price_per_meter, tax_rate, car_rental_value, status, administrator_id`

func toDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		ID:                  m.ID,
		ParkID:              m.ParkID,
		Year:                m.Year,
		Month:               m.Month,
		JVAPricePerMeter:    m.JVAPricePerMeter,
		LeaderPricePerMeter: m.LeaderPricePerMeter,
		TaxRate:             m.TaxRate,
		CarRentalValue:      m.CarRentalValue,
		Status:              domain.PeriodStatus(m.Status),
		AdministratorID:     m.AdministratorID,
	}
}

func scanPeriod(row pgx.Row) (models.Period, error) {
	var m models.Period
	err := row.Scan(
		&m.ID,
		&m.ParkID,
		&m.Year,
		&m.Month,
		&m.JVAPricePerMeter,
		&m.LeaderPricePerMeter,
		&m.TaxRate,
		&m.CarRentalValue,
		&m.Status,
		&m.AdministratorID,
	)
	return m, err
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) (*domain.Period, error) {
	query := `
		INSERT INTO financial_periods
			(park_id, year, month, jva_price_per_meter, leader_price_per_meter, tax_rate, car_rental_value, status, administrator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		period.ParkID,
		period.Year,
		period.Month,
		period.JVAPricePerMeter,
		period.LeaderPricePerMeter,
		period.TaxRate,
		period.CarRentalValue,
		string(period.Status),
		period.AdministratorID,
	).Scan(&period.ID)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("period %d/%d of park %d", period.Month, period.Year, period.ParkID))
	}
	return &period, nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID int64) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM financial_periods WHERE id = $1;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %d: %w", periodID, err)
	}
	period := toDomainPeriod(m)
	return &period, nil
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM financial_periods ORDER BY year DESC, month DESC, id DESC;`
	return r.queryPeriods(ctx, query)
}

func (r *PgxPeriodRepository) ListPeriodsByPark(ctx context.Context, parkID int64) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM financial_periods WHERE park_id = $1 ORDER BY year DESC, month DESC, id DESC;`
	return r.queryPeriods(ctx, query, parkID)
}

func (r *PgxPeriodRepository) queryPeriods(ctx context.Context, query string, args ...interface{}) ([]domain.Period, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.Period{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, toDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate period rows: %w", err)
	}
	return periods, nil
}

func (r *PgxPeriodRepository) ExistsPeriod(ctx context.Context, parkID int64, year int, month int) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM financial_periods WHERE park_id = $1 AND year = $2 AND month = $3)`,
		parkID, year, month,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check period existence: %w", err)
	}
	return exists, nil
}

// UpdatePeriod persists the period and, when repriceEntries is set, recomputes
// every service entry's unit price and gross value from the new rate in the
// same transaction so readers never observe a half-repriced period.
func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.Period, repriceEntries bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE financial_periods
		SET jva_price_per_meter = $2, leader_price_per_meter = $3, tax_rate = $4,
		    car_rental_value = $5, status = $6, administrator_id = $7
		WHERE id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		period.ID,
		period.JVAPricePerMeter,
		period.LeaderPricePerMeter,
		period.TaxRate,
		period.CarRentalValue,
		string(period.Status),
		period.AdministratorID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("period %d", period.ID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if repriceEntries {
		repriceQuery := `
			UPDATE service_entries
			SET unit_price = $2,
			    gross_value = round(meters * $2, 2)
			WHERE period_id = $1;
		`
		if _, err := tx.Exec(ctx, repriceQuery, period.ID, period.JVAPricePerMeter); err != nil {
			return fmt.Errorf("failed to reprice entries of period %d: %w", period.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPeriodRepository) DeletePeriod(ctx context.Context, periodID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM financial_periods WHERE id = $1`, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete period %d: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
