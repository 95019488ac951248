package domain

import "time"

// User is a login credential, keyed by the holder's normalized 11-digit CPF.
// Administrators link to a User through the same CPF.
type User struct {
	CPF          string `json:"cpf"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
