package dto

import (
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentEntryRequest defines the data needed to record a payment entry
// under a period.
type CreatePaymentEntryRequest struct {
	PaymentDate   *Date                   `json:"paymentDate"`
	Name          string                  `json:"name" binding:"required"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	Amount        *decimal.Decimal        `json:"amount" binding:"required"`
	Category      *domain.PaymentCategory `json:"category" binding:"omitempty,oneof=CLIENT_PAYMENT EMPLOYEE_HELPER EMPLOYEE_LEADER OTHER"`
	Notes         string                  `json:"notes"`
	EmployeeID    *int64                  `json:"employeeId"`
	ClientCNPJ    *string                 `json:"clientCnpj"`
}

// UpdatePaymentEntryRequest defines the fields of a payment entry that can be
// changed after creation.
type UpdatePaymentEntryRequest struct {
	PaymentDate   *Date                   `json:"paymentDate"`
	Name          *string                 `json:"name"`
	InvoiceNumber *string                 `json:"invoiceNumber"`
	Amount        *decimal.Decimal        `json:"amount"`
	Category      *domain.PaymentCategory `json:"category" binding:"omitempty,oneof=CLIENT_PAYMENT EMPLOYEE_HELPER EMPLOYEE_LEADER OTHER"`
	Notes         *string                 `json:"notes"`
	EmployeeID    *int64                  `json:"employeeId"`
	ClientCNPJ    *string                 `json:"clientCnpj"`
}

// PaymentEntryResponse defines the data returned for a payment entry.
type PaymentEntryResponse struct {
	ID            int64                  `json:"id"`
	PeriodID      int64                  `json:"periodId"`
	PaymentDate   Date                   `json:"paymentDate"`
	Name          string                 `json:"name"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	Amount        decimal.Decimal        `json:"amount"`
	Category      domain.PaymentCategory `json:"category"`
	Notes         string                 `json:"notes"`
	EmployeeID    *int64                 `json:"employeeId"`
	ClientCNPJ    *string                `json:"clientCnpj"`
	HasReceipt    bool                   `json:"hasReceipt"`
}

// ToPaymentEntryResponse converts a domain.PaymentEntry to its response DTO.
func ToPaymentEntryResponse(p *domain.PaymentEntry) PaymentEntryResponse {
	return PaymentEntryResponse{
		ID:            p.ID,
		PeriodID:      p.PeriodID,
		PaymentDate:   NewDate(p.PaymentDate),
		Name:          p.Name,
		InvoiceNumber: p.InvoiceNumber,
		Amount:        p.Amount,
		Category:      p.Category,
		Notes:         p.Notes,
		EmployeeID:    p.EmployeeID,
		ClientCNPJ:    p.ClientCNPJ,
		HasReceipt:    p.HasReceipt,
	}
}

// ToListPaymentEntryResponse converts a slice of payment entries to DTOs.
func ToListPaymentEntryResponse(payments []domain.PaymentEntry) []PaymentEntryResponse {
	res := make([]PaymentEntryResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentEntryResponse(&payments[i])
	}
	return res
}
