package entity

import "time"

// Company representa una empresa que publica vacantes en la bolsa de empleo.
// Sus vacantes publicadas se derivan de jobs.company_id (no se mantiene lista duplicada).
type Company struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	PasswordHash  string
	Phone         string
	Address       Address
	Description   string
	OTPCode       string     // código OTP vigente (vacío si no hay)
	OTPExpiresAt  *time.Time // nil = sin OTP pendiente
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Address dirección física de la empresa.
type Address struct {
	Street  string
	City    string
	State   string
	Country string
}
