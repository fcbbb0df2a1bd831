package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/empleolibre/empleo-api/internal/application/auth"
	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/pkg/logger"
)

// AuthHandler maneja registro con OTP, login y restablecimiento de contraseña
// para empresas y postulantes.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// RegisterCompany godoc
// @Summary      Registrar empresa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.RegisterCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/empresas/register [post]
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var in dto.RegisterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, phone y password (mínimo 8 caracteres) son requeridos"})
	}
	out, err := h.uc.RegisterCompany(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		h.log.Error().Err(err).Str("op", "registerCompany").Str("email", in.Email).Msg("registro de empresa")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterUser godoc
// @Summary      Registrar postulante
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "Datos del postulante"
// @Success      201   {object}  dto.RegisterUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/postulantes/register [post]
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password (mínimo 8 caracteres) son requeridos"})
	}
	out, err := h.uc.RegisterUser(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		h.log.Error().Err(err).Str("op", "registerUser").Str("email", in.Email).Msg("registro de postulante")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// VerifyOTP maneja la verificación de email para ambos tipos de principal.
// verify es VerifyCompanyOTP o VerifyUserOTP según la ruta.
func (h *AuthHandler) verifyOTP(c *fiber.Ctx, op string, verify func(dto.VerifyOTPRequest) error) error {
	var in dto.VerifyOTPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y code (6 dígitos) son requeridos"})
	}
	if err := verify(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		case errors.Is(err, domain.ErrOTPInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OTP_INVALID", Message: "código OTP incorrecto"})
		case errors.Is(err, domain.ErrOTPExpired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OTP_EXPIRED", Message: "código OTP vencido, solicite uno nuevo"})
		}
		h.log.Error().Err(err).Str("op", op).Str("email", in.Email).Msg("verificación OTP")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "email verificado exitosamente"})
}

// VerifyCompanyOTP verifica el OTP de registro de una empresa.
func (h *AuthHandler) VerifyCompanyOTP(c *fiber.Ctx) error {
	return h.verifyOTP(c, "verifyCompanyOTP", h.uc.VerifyCompanyOTP)
}

// VerifyUserOTP verifica el OTP de registro de un postulante.
func (h *AuthHandler) VerifyUserOTP(c *fiber.Ctx) error {
	return h.verifyOTP(c, "verifyUserOTP", h.uc.VerifyUserOTP)
}

func (h *AuthHandler) login(c *fiber.Ctx, op string, login func(dto.LoginRequest) (*dto.LoginResponse, error)) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrEmailNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "EMAIL_NOT_VERIFIED", Message: "verifique su email antes de iniciar sesión"})
		}
		h.log.Error().Err(err).Str("op", op).Str("email", in.Email).Msg("login")
		return internalError(c)
	}
	return c.JSON(out)
}

// LoginCompany inicia sesión de una empresa.
func (h *AuthHandler) LoginCompany(c *fiber.Ctx) error {
	return h.login(c, "loginCompany", h.uc.LoginCompany)
}

// LoginUser inicia sesión de un postulante.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	return h.login(c, "loginUser", h.uc.LoginUser)
}

func (h *AuthHandler) passwordResetRequest(c *fiber.Ctx, op string, request func(dto.PasswordResetRequest) error) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := request(in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		h.log.Error().Err(err).Str("op", op).Str("email", in.Email).Msg("solicitud de restablecimiento")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "código enviado al correo registrado"})
}

// RequestCompanyPasswordReset envía un OTP de restablecimiento a una empresa.
func (h *AuthHandler) RequestCompanyPasswordReset(c *fiber.Ctx) error {
	return h.passwordResetRequest(c, "companyPasswordResetRequest", h.uc.RequestCompanyPasswordReset)
}

// RequestUserPasswordReset envía un OTP de restablecimiento a un postulante.
func (h *AuthHandler) RequestUserPasswordReset(c *fiber.Ctx) error {
	return h.passwordResetRequest(c, "userPasswordResetRequest", h.uc.RequestUserPasswordReset)
}

func (h *AuthHandler) resetPassword(c *fiber.Ctx, op string, reset func(dto.ResetPasswordRequest) error) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, code y new_password (mínimo 8 caracteres) son requeridos"})
	}
	if err := reset(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		case errors.Is(err, domain.ErrOTPInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OTP_INVALID", Message: "código OTP incorrecto"})
		case errors.Is(err, domain.ErrOTPExpired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OTP_EXPIRED", Message: "código OTP vencido, solicite uno nuevo"})
		}
		h.log.Error().Err(err).Str("op", op).Str("email", in.Email).Msg("restablecimiento de contraseña")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña restablecida exitosamente"})
}

// ResetCompanyPassword restablece la contraseña de una empresa con el OTP.
func (h *AuthHandler) ResetCompanyPassword(c *fiber.Ctx) error {
	return h.resetPassword(c, "resetCompanyPassword", h.uc.ResetCompanyPassword)
}

// ResetUserPassword restablece la contraseña de un postulante con el OTP.
func (h *AuthHandler) ResetUserPassword(c *fiber.Ctx) error {
	return h.resetPassword(c, "resetUserPassword", h.uc.ResetUserPassword)
}
