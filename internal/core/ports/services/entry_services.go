package services

import (
	"context"

	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/jvamontagens/assembly_backend/internal/dto"
)

// ServiceEntrySvcFacade validates and persists service entries against a
// parent period.
type ServiceEntrySvcFacade interface {
	// AddServiceEntry records a new service entry (with helpers) under a
	// period, pricing it from the period's current rate.
	AddServiceEntry(ctx context.Context, periodID int64, req dto.CreateServiceEntryRequest) (*domain.ServiceEntry, error)

	// ListServiceEntries retrieves a period's service entries.
	ListServiceEntries(ctx context.Context, periodID int64) ([]domain.ServiceEntry, error)

	// UpdateServiceEntry applies a partial update, re-deriving unit price and
	// gross value from the period's current rate.
	UpdateServiceEntry(ctx context.Context, entryID int64, req dto.UpdateServiceEntryRequest) (*domain.ServiceEntry, error)

	// DeleteServiceEntry removes a service entry and its helpers.
	DeleteServiceEntry(ctx context.Context, entryID int64) error
}

// PaymentSvcFacade validates and persists payment entries and their receipt
// attachments.
type PaymentSvcFacade interface {
	// AddPaymentEntry records a new payment entry under a period.
	AddPaymentEntry(ctx context.Context, periodID int64, req dto.CreatePaymentEntryRequest) (*domain.PaymentEntry, error)

	// ListPaymentEntries retrieves a period's payment entries.
	ListPaymentEntries(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error)

	// UpdatePaymentEntry applies a partial update; a category change re-checks
	// the linked employee's role against the new category.
	UpdatePaymentEntry(ctx context.Context, paymentID int64, req dto.UpdatePaymentEntryRequest) (*domain.PaymentEntry, error)

	// DeletePaymentEntry removes a payment entry.
	DeletePaymentEntry(ctx context.Context, paymentID int64) error

	// UploadPaymentReceipt validates and attaches a receipt file to a payment.
	UploadPaymentReceipt(ctx context.Context, paymentID int64, originalFilename string, contentType string, data []byte) (*domain.PaymentEntry, error)

	// GetPaymentReceipt retrieves a payment's receipt file.
	GetPaymentReceipt(ctx context.Context, paymentID int64) (*domain.ReceiptFile, error)
}
