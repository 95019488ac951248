package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentCategory classifies a cash movement recorded against a period.
type PaymentCategory string

const (
	PaymentClientPayment  PaymentCategory = "CLIENT_PAYMENT"
	PaymentEmployeeHelper PaymentCategory = "EMPLOYEE_HELPER"
	PaymentEmployeeLeader PaymentCategory = "EMPLOYEE_LEADER"
	PaymentOther          PaymentCategory = "OTHER"
)

// EmployeeRole returns the role required of the linked employee for
// the two employee payout categories, or false when the category carries no
// employee link.
func (c PaymentCategory) EmployeeRole() (JobRole, bool) {
	switch c {
	case PaymentEmployeeHelper:
		return RoleAssembler, true
	case PaymentEmployeeLeader:
		return RoleLeader, true
	}
	return "", false
}

// PaymentEntry is one cash movement (in or out) within a period.
type PaymentEntry struct {
	ID            int64           `json:"id"`
	PeriodID      int64           `json:"periodId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Name          string          `json:"name"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Category      PaymentCategory `json:"category"`
	Notes         string          `json:"notes"`
	EmployeeID    *int64          `json:"employeeId"`
	ClientCNPJ    *string         `json:"clientCnpj"`
	HasReceipt    bool            `json:"hasReceipt"`

	ReceiptFileName    string `json:"receiptFileName,omitempty"`
	ReceiptContentType string `json:"receiptContentType,omitempty"`
	ReceiptSize        int64  `json:"receiptSize,omitempty"`
}

// ReceiptFile carries the bytes and metadata of a payment receipt attachment.
type ReceiptFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
