package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/application/usecase"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/pkg/logger"
)

// ApplicationHandler maneja las postulaciones a vacantes.
type ApplicationHandler struct {
	uc  *usecase.ApplicationUseCase
	log *logger.Logger
}

// NewApplicationHandler construye el handler.
func NewApplicationHandler(uc *usecase.ApplicationUseCase, log *logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, log: log}
}

// Apply godoc
// @Summary      Postularse a una vacante abierta (solo postulante)
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID := GetPrincipalID(c)
	jobID := c.Params("id")
	if err := h.uc.Apply(userID, jobID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		case errors.Is(err, domain.ErrJobClosed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "JOB_CLOSED", Message: "la vacante está cerrada"})
		case errors.Is(err, domain.ErrAlreadyApplied):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_APPLIED", Message: "ya se postuló a esta vacante"})
		}
		h.log.Error().Err(err).Str("op", "apply").Str("job_id", jobID).Str("user_id", userID).Msg("postulación")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "postulación registrada exitosamente"})
}

// ListApplicants godoc
// @Summary      Listar postulantes de una vacante (solo empresa dueña)
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.ApplicantsEnvelope
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/applicants [get]
func (h *ApplicationHandler) ListApplicants(c *fiber.Ctx) error {
	companyID := GetPrincipalID(c)
	jobID := c.Params("id")
	applicants, err := h.uc.ListApplicants(companyID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vacante pertenece a otra empresa"})
		}
		h.log.Error().Err(err).Str("op", "listApplicants").Str("job_id", jobID).Str("company_id", companyID).Msg("listar postulantes")
		return internalError(c)
	}
	return c.JSON(dto.ApplicantsEnvelope{Message: "postulantes obtenidos exitosamente", Applicants: applicants})
}

// AppliedJobs godoc
// @Summary      Vacantes a las que el postulante autenticado ha aplicado
// @Tags         applications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AppliedJobsEnvelope
// @Router       /api/postulantes/me/postulaciones [get]
func (h *ApplicationHandler) AppliedJobs(c *fiber.Ctx) error {
	userID := GetPrincipalID(c)
	ids, err := h.uc.AppliedJobs(userID)
	if err != nil {
		h.log.Error().Err(err).Str("op", "appliedJobs").Str("user_id", userID).Msg("listar postulaciones del usuario")
		return internalError(c)
	}
	return c.JSON(dto.AppliedJobsEnvelope{Message: "postulaciones obtenidas exitosamente", AppliedJobs: ids})
}
