package repositories

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment entry data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment entry by id (receipt bytes excluded).
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentEntry, error)

	// ListPaymentsByPeriod retrieves all payment entries of a period, ordered by
	// payment date then id.
	ListPaymentsByPeriod(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error)

	// FindReceipt retrieves the stored receipt bytes and metadata of a payment.
	FindReceipt(ctx context.Context, paymentID int64) (*domain.ReceiptFile, error)
}

// PaymentWriter defines write operations for payment entry data
type PaymentWriter interface {
	// SavePayment inserts a payment entry and returns it with its generated id.
	SavePayment(ctx context.Context, payment domain.PaymentEntry) (*domain.PaymentEntry, error)

	// UpdatePayment persists changed payment fields (receipt columns excluded).
	UpdatePayment(ctx context.Context, payment domain.PaymentEntry) (*domain.PaymentEntry, error)

	// DeletePayment removes a payment entry and its receipt.
	DeletePayment(ctx context.Context, paymentID int64) error

	// SaveReceipt stores the receipt file on a payment and flips hasReceipt.
	SaveReceipt(ctx context.Context, paymentID int64, file domain.ReceiptFile) error
}

// PaymentRepository combines all payment-related repository interfaces.
type PaymentRepository interface {
	PaymentReader
	PaymentWriter
}
