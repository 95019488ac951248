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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func toModelClient(d domain.Client) models.Client {
	return models.Client{
		CNPJ:         d.CNPJ,
		Name:         d.Name,
		ContactPhone: d.ContactPhone,
		Email:        d.Email,
	}
}

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		CNPJ:         m.CNPJ,
		Name:         m.Name,
		ContactPhone: m.ContactPhone,
		Email:        m.Email,
	}
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		INSERT INTO clients (cnpj, name, contact_phone, email)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.CNPJ, m.Name, m.ContactPhone, m.Email)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("client %s", m.CNPJ))
	}
	return nil
}

func (r *PgxClientRepository) FindClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error) {
	query := `
		SELECT cnpj, name, contact_phone, email
		FROM clients
		WHERE cnpj = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, cnpj).Scan(&m.CNPJ, &m.Name, &m.ContactPhone, &m.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", cnpj, err)
	}
	client := toDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) ExistsClient(ctx context.Context, cnpj string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM clients WHERE cnpj = $1)`, cnpj).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check client existence: %w", err)
	}
	return exists, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT cnpj, name, contact_phone, email
		FROM clients
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(&m.CNPJ, &m.Name, &m.ContactPhone, &m.Email); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, contact_phone = $3, email = $4
		WHERE cnpj = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CNPJ, m.Name, m.ContactPhone, m.Email)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("client %s", m.CNPJ))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, cnpj string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE cnpj = $1`, cnpj)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", cnpj, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
