package models

// Park represents a row of the parks table.
type Park struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	City       string `db:"city"`
	State      string `db:"state"`
	ClientCNPJ string `db:"client_cnpj"`
}
