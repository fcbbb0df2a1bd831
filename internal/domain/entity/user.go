package entity

import "time"

// User representa un postulante. Sus vacantes aplicadas se derivan de applications.user_id.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	PasswordHash  string
	Phone         string
	PictureURL    string
	ResumeURL     string
	OTPCode       string
	OTPExpiresAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ApplicantProfile proyección pública de un postulante (nunca incluye el hash de contraseña).
type ApplicantProfile struct {
	ID         string
	Name       string
	Email      string
	PictureURL string
	ResumeURL  string
	AppliedAt  time.Time
}
