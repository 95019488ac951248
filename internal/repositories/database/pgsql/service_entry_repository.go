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

type PgxServiceEntryRepository struct {
	BaseRepository
}

func newPgxServiceEntryRepository(db *pgxpool.Pool) portsrepo.ServiceEntryRepository {
	return &PgxServiceEntryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ServiceEntryRepository = (*PgxServiceEntryRepository)(nil)

const serviceEntryColumns = `id, period_id, service_type, team_type, leader_id, meters, unit_price, gross_value, notes, start_date, end_date, days`

func toDomainServiceEntry(m models.ServiceEntry) domain.ServiceEntry {
	return domain.ServiceEntry{
		ID:          m.ID,
		PeriodID:    m.PeriodID,
		ServiceType: domain.ServiceType(m.ServiceType),
		TeamType:    m.TeamType,
		LeaderID:    m.LeaderID,
		Meters:      m.Meters,
		UnitPrice:   m.UnitPrice,
		GrossValue:  m.GrossValue,
		Notes:       m.Notes,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Days:        m.Days,
	}
}

func toDomainServiceHelper(m models.ServiceHelper) domain.ServiceHelper {
	return domain.ServiceHelper{
		ID:             m.ID,
		ServiceEntryID: m.ServiceEntryID,
		EmployeeID:     m.EmployeeID,
		DailyRateUsed:  m.DailyRateUsed,
		DaysUsed:       m.DaysUsed,
		TotalCost:      m.TotalCost,
	}
}

func scanServiceEntry(row pgx.Row) (models.ServiceEntry, error) {
	var m models.ServiceEntry
	err := row.Scan(
		&m.ID,
		&m.PeriodID,
		&m.ServiceType,
		&m.TeamType,
		&m.LeaderID,
		&m.Meters,
		&m.UnitPrice,
		&m.GrossValue,
		&m.Notes,
		&m.StartDate,
		&m.EndDate,
		&m.Days,
	)
	return m, err
}

// SaveServiceEntry inserts the entry and its helpers in one transaction.
func (r *PgxServiceEntryRepository) SaveServiceEntry(ctx context.Context, entry domain.ServiceEntry) (*domain.ServiceEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO service_entries
			(period_id, service_type, team_type, leader_id, meters, unit_price, gross_value, notes, start_date, end_date, days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		entry.PeriodID,
		string(entry.ServiceType),
		entry.TeamType,
		entry.LeaderID,
		entry.Meters,
		entry.UnitPrice,
		entry.GrossValue,
		entry.Notes,
		entry.StartDate,
		entry.EndDate,
		entry.Days,
	).Scan(&entry.ID)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("service entry of period %d", entry.PeriodID))
	}

	for i := range entry.Helpers {
		helper := &entry.Helpers[i]
		helper.ServiceEntryID = entry.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO service_helpers (service_entry_id, employee_id, daily_rate_used, days_used, total_cost)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
		`, helper.ServiceEntryID, helper.EmployeeID, helper.DailyRateUsed, helper.DaysUsed, helper.TotalCost).Scan(&helper.ID)
		if err != nil {
			return nil, mapWriteError(err, fmt.Sprintf("helper %d of service entry %d", helper.EmployeeID, entry.ID))
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PgxServiceEntryRepository) FindServiceEntryByID(ctx context.Context, entryID int64) (*domain.ServiceEntry, error) {
	query := `SELECT ` + serviceEntryColumns + ` FROM service_entries WHERE id = $1;`
	m, err := scanServiceEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service entry %d: %w", entryID, err)
	}

	entry := toDomainServiceEntry(m)
	helpers, err := r.findHelpers(ctx, []int64{entry.ID})
	if err != nil {
		return nil, err
	}
	entry.Helpers = helpers[entry.ID]
	if entry.Helpers == nil {
		entry.Helpers = []domain.ServiceHelper{}
	}
	return &entry, nil
}

func (r *PgxServiceEntryRepository) ListServiceEntriesByPeriod(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error) {
	query := `SELECT ` + serviceEntryColumns + ` FROM service_entries WHERE period_id = $1 ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ServiceEntry{}
	ids := []int64{}
	for rows.Next() {
		m, err := scanServiceEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service entry row: %w", err)
		}
		entries = append(entries, toDomainServiceEntry(m))
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service entry rows: %w", err)
	}

	helpers, err := r.findHelpers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Helpers = helpers[entries[i].ID]
		if entries[i].Helpers == nil {
			entries[i].Helpers = []domain.ServiceHelper{}
		}
	}
	return entries, nil
}

// findHelpers loads the helpers of the given entries in one query, grouped by
// entry id.
func (r *PgxServiceEntryRepository) findHelpers(ctx context.Context, entryIDs []int64) (map[int64][]domain.ServiceHelper, error) {
	result := make(map[int64][]domain.ServiceHelper, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, service_entry_id, employee_id, daily_rate_used, days_used, total_cost
		FROM service_helpers
		WHERE service_entry_id = ANY($1)
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query service helpers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ServiceHelper
		if err := rows.Scan(&m.ID, &m.ServiceEntryID, &m.EmployeeID, &m.DailyRateUsed, &m.DaysUsed, &m.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan service helper row: %w", err)
		}
		result[m.ServiceEntryID] = append(result[m.ServiceEntryID], toDomainServiceHelper(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service helper rows: %w", err)
	}
	return result, nil
}

func (r *PgxServiceEntryRepository) ExistsLeaderlessByPeriod(ctx context.Context, periodID int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM service_entries WHERE period_id = $1 AND leader_id IS NULL)`,
		periodID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check leaderless entries: %w", err)
	}
	return exists, nil
}

func (r *PgxServiceEntryRepository) UpdateServiceEntry(ctx context.Context, entry domain.ServiceEntry) (*domain.ServiceEntry, error) {
	query := `
		UPDATE service_entries
		SET service_type = $2, team_type = $3, leader_id = $4, meters = $5, unit_price = $6,
		    gross_value = $7, notes = $8, start_date = $9, end_date = $10, days = $11
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.ID,
		string(entry.ServiceType),
		entry.TeamType,
		entry.LeaderID,
		entry.Meters,
		entry.UnitPrice,
		entry.GrossValue,
		entry.Notes,
		entry.StartDate,
		entry.EndDate,
		entry.Days,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("service entry %d", entry.ID))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (r *PgxServiceEntryRepository) DeleteServiceEntry(ctx context.Context, entryID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM service_entries WHERE id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete service entry %d: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
