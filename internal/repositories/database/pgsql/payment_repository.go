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

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

// paymentColumns excludes receipt_data so list queries never drag receipt
// bytes across the wire.
const paymentColumns = `id, period_id, payment_date, name, invoice_number, amount, category, notes, employee_id, client_cnpj, receipt_file_name, receipt_content_type, receipt_size`

func toDomainPayment(m models.PaymentEntry) domain.PaymentEntry {
	p := domain.PaymentEntry{
		ID:            m.ID,
		PeriodID:      m.PeriodID,
		PaymentDate:   m.PaymentDate,
		Name:          m.Name,
		InvoiceNumber: m.InvoiceNumber,
		Amount:        m.Amount,
		Category:      domain.PaymentCategory(m.Category),
		Notes:         m.Notes,
		EmployeeID:    m.EmployeeID,
		ClientCNPJ:    m.ClientCNPJ,
	}
	if m.ReceiptFileName != nil {
		p.HasReceipt = true
		p.ReceiptFileName = *m.ReceiptFileName
	}
	if m.ReceiptContentType != nil {
		p.ReceiptContentType = *m.ReceiptContentType
	}
	if m.ReceiptSize != nil {
		p.ReceiptSize = *m.ReceiptSize
	}
	return p
}

func scanPayment(row pgx.Row) (models.PaymentEntry, error) {
	var m models.PaymentEntry
	err := row.Scan(
		&m.ID,
		&m.PeriodID,
		&m.PaymentDate,
		&m.Name,
		&m.InvoiceNumber,
		&m.Amount,
		&m.Category,
		&m.Notes,
		&m.EmployeeID,
		&m.ClientCNPJ,
		&m.ReceiptFileName,
		&m.ReceiptContentType,
		&m.ReceiptSize,
	)
	return m, err
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentEntry) (*domain.PaymentEntry, error) {
	query := `
		INSERT INTO payment_entries
			(period_id, payment_date, name, invoice_number, amount, category, notes, employee_id, client_cnpj)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		payment.PeriodID,
		payment.PaymentDate,
		payment.Name,
		payment.InvoiceNumber,
		payment.Amount,
		string(payment.Category),
		payment.Notes,
		payment.EmployeeID,
		payment.ClientCNPJ,
	).Scan(&payment.ID)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("payment entry of period %d", payment.PeriodID))
	}
	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_entries WHERE id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %d: %w", paymentID, err)
	}
	payment := toDomainPayment(m)
	return &payment, nil
}

func (r *PgxPaymentRepository) ListPaymentsByPeriod(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_entries WHERE period_id = $1 ORDER BY payment_date, id;`
	rows, err := r.Pool.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.PaymentEntry{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) FindReceipt(ctx context.Context, paymentID int64) (*domain.ReceiptFile, error) {
	query := `
		SELECT receipt_file_name, receipt_content_type, receipt_data
		FROM payment_entries
		WHERE id = $1;
	`
	var fileName, contentType *string
	var data []byte
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(&fileName, &contentType, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt of payment %d: %w", paymentID, err)
	}

	file := &domain.ReceiptFile{Data: data}
	if fileName != nil {
		file.FileName = *fileName
	}
	if contentType != nil {
		file.ContentType = *contentType
	}
	return file, nil
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.PaymentEntry) (*domain.PaymentEntry, error) {
	query := `
		UPDATE payment_entries
		SET payment_date = $2, name = $3, invoice_number = $4, amount = $5,
		    category = $6, notes = $7, employee_id = $8, client_cnpj = $9
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		payment.ID,
		payment.PaymentDate,
		payment.Name,
		payment.InvoiceNumber,
		payment.Amount,
		string(payment.Category),
		payment.Notes,
		payment.EmployeeID,
		payment.ClientCNPJ,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("payment entry %d", payment.ID))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payment, nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_entries WHERE id = $1`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) SaveReceipt(ctx context.Context, paymentID int64, file domain.ReceiptFile) error {
	query := `
		UPDATE payment_entries
		SET receipt_file_name = $2, receipt_content_type = $3, receipt_size = $4, receipt_data = $5
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, paymentID, file.FileName, file.ContentType, int64(len(file.Data)), file.Data)
	if err != nil {
		return fmt.Errorf("failed to store receipt of payment %d: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
