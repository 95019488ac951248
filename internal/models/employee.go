package models

import "github.com/shopspring/decimal"

// Employee represents a row of the employees table. Rate columns are nullable
// since only some roles carry them.
type Employee struct {
	ID            int64            `db:"id"`
	Name          string           `db:"name"`
	CPF           string           `db:"cpf"`
	PixKey        string           `db:"pix_key"`
	GovEmail      string           `db:"gov_email"`
	GovPassword   string           `db:"gov_password"`
	Role          string           `db:"role"`
	DailyRate     *decimal.Decimal `db:"daily_rate"`
	PricePerMeter *decimal.Decimal `db:"price_per_meter"`
	Active        bool             `db:"active"`
}
