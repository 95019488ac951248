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

type PgxParkRepository struct {
	BaseRepository
}

func newPgxParkRepository(db *pgxpool.Pool) portsrepo.ParkRepository {
	return &PgxParkRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ParkRepository = (*PgxParkRepository)(nil)

func toDomainPark(m models.Park) domain.Park {
	return domain.Park{
		ID:         m.ID,
		Name:       m.Name,
		City:       m.City,
		State:      m.State,
		ClientCNPJ: m.ClientCNPJ,
	}
}

func (r *PgxParkRepository) SavePark(ctx context.Context, park domain.Park) (*domain.Park, error) {
	query := `
		INSERT INTO parks (name, city, state, client_cnpj)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query, park.Name, park.City, park.State, park.ClientCNPJ).Scan(&park.ID)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("park %q", park.Name))
	}
	return &park, nil
}

func (r *PgxParkRepository) FindParkByID(ctx context.Context, parkID int64) (*domain.Park, error) {
	query := `
		SELECT id, name, city, state, client_cnpj
		FROM parks
		WHERE id = $1;
	`
	var m models.Park
	err := r.Pool.QueryRow(ctx, query, parkID).Scan(&m.ID, &m.Name, &m.City, &m.State, &m.ClientCNPJ)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find park %d: %w", parkID, err)
	}
	park := toDomainPark(m)
	return &park, nil
}

func (r *PgxParkRepository) ListParks(ctx context.Context, clientCNPJ *string) ([]domain.Park, error) {
	query := `
		SELECT id, name, city, state, client_cnpj
		FROM parks
		WHERE ($1::text IS NULL OR client_cnpj = $1)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, clientCNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to query parks: %w", err)
	}
	defer rows.Close()

	parks := []domain.Park{}
	for rows.Next() {
		var m models.Park
		if err := rows.Scan(&m.ID, &m.Name, &m.City, &m.State, &m.ClientCNPJ); err != nil {
			return nil, fmt.Errorf("failed to scan park row: %w", err)
		}
		parks = append(parks, toDomainPark(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate park rows: %w", err)
	}
	return parks, nil
}

func (r *PgxParkRepository) UpdatePark(ctx context.Context, park domain.Park) error {
	query := `
		UPDATE parks
		SET name = $2, city = $3, state = $4, client_cnpj = $5
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, park.ID, park.Name, park.City, park.State, park.ClientCNPJ)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("park %d", park.ID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxParkRepository) DeletePark(ctx context.Context, parkID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parks WHERE id = $1`, parkID)
	if err != nil {
		return fmt.Errorf("failed to delete park %d: %w", parkID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
