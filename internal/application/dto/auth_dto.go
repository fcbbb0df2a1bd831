package dto

import "time"

// AddressRequest dirección de la empresa en el registro.
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// RegisterCompanyRequest entrada para registrar una empresa
// (password en texto, se hashea en el use case).
type RegisterCompanyRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=200"`
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,min=8"`
	Phone       string         `json:"phone" validate:"required"`
	Address     AddressRequest `json:"address"`
	Description string         `json:"description" validate:"max=2000"`
}

// RegisterUserRequest entrada para registrar un postulante.
type RegisterUserRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone"`
	PictureURL string `json:"picture_url" validate:"omitempty,url"`
	ResumeURL  string `json:"resume_url" validate:"omitempty,url"`
}

// VerifyOTPRequest entrada para verificar el OTP de registro.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// LoginRequest entrada para login (empresa o postulante según la ruta).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest solicita el envío de un OTP de restablecimiento.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest restablece la contraseña con el OTP recibido.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// CompanyResponse salida de una empresa (sin hash de contraseña).
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Phone         string    `json:"phone"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserResponse salida de un postulante (sin hash de contraseña).
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	Phone         string    `json:"phone"`
	PictureURL    string    `json:"picture_url"`
	ResumeURL     string    `json:"resume_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterCompanyResponse respuesta de registro de empresa.
type RegisterCompanyResponse struct {
	Message string          `json:"message"`
	Company CompanyResponse `json:"company"`
}

// RegisterUserResponse respuesta de registro de postulante.
type RegisterUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
