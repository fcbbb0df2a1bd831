package dto

import (
	"github.com/go-playground/validator/v10"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de éxito sin entidad (close, delete, apply).
type MessageResponse struct {
	Message string `json:"message"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida un DTO contra sus tags `validate`. Devuelve el error crudo del
// validador; los handlers lo traducen a 400 con mensaje estable.
func Validate(s any) error {
	return validate.Struct(s)
}
