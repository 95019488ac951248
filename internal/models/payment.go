package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEntry represents a row of the payment_entries table. The receipt
// bytes live in the same row but are only selected when explicitly requested.
type PaymentEntry struct {
	ID            int64           `db:"id"`
	PeriodID      int64           `db:"period_id"`
	PaymentDate   time.Time       `db:"payment_date"`
	Name          string          `db:"name"`
	InvoiceNumber string          `db:"invoice_number"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Notes         string          `db:"notes"`
	EmployeeID    *int64          `db:"employee_id"`
	ClientCNPJ    *string         `db:"client_cnpj"`

	ReceiptFileName    *string `db:"receipt_file_name"`
	ReceiptContentType *string `db:"receipt_content_type"`
	ReceiptSize        *int64  `db:"receipt_size"`
	ReceiptData        []byte  `db:"receipt_data"`
}
