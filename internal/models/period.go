package models

import "github.com/shopspring/decimal"

// Period represents a row of the financial_periods table. One row exists per
// (park, year, month), enforced by a unique index.
type Period struct {
	ID                  int64           `db:"id"`
	ParkID              int64           `db:"park_id"`
	Year                int             `db:"year"`
	Month               int             `db:"month"`
	JVAPricePerMeter    decimal.Decimal `db:"jva_price_per_meter"`
	LeaderPricePerMeter decimal.Decimal `db:"leader_price_per_meter"`
	TaxRate             decimal.Decimal `db:"tax_rate"`
	CarRentalValue      decimal.Decimal `db:"car_rental_value"`
	Status              string          `db:"status"`
	AdministratorID     *int64          `db:"administrator_id"`
}
