package models

import "time"

// User represents a row of the users table, keyed by CPF.
type User struct {
	CPF          string `db:"cpf"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	RefreshTokenHash       *string    `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
}
