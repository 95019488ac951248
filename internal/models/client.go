package models

// Client represents a row of the clients table, keyed by the normalized
// 14-digit CNPJ.
type Client struct {
	CNPJ         string `db:"cnpj"`
	Name         string `db:"name"`
	ContactPhone string `db:"contact_phone"`
	Email        string `db:"email"`
}
