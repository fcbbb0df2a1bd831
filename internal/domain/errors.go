package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrJobClosed          = errors.New("la vacante está cerrada")
	ErrAlreadyApplied     = errors.New("ya existe una postulación a esta vacante")
	ErrOTPInvalid         = errors.New("código OTP incorrecto")
	ErrOTPExpired         = errors.New("código OTP vencido")
	ErrEmailNotVerified   = errors.New("el email no ha sido verificado")
)
