package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/application/usecase"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/pkg/logger"
)

// JobHandler maneja las peticiones HTTP del ciclo de vida de vacantes.
type JobHandler struct {
	uc  *usecase.JobUseCase
	log *logger.Logger
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase, log *logger.Logger) *JobHandler {
	return &JobHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear vacante
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "Datos de la vacante"
// @Success      201   {object}  dto.CreateJobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	companyID := GetPrincipalID(c)
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y todos los campos del requerimiento son obligatorios"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y todos los campos del requerimiento son obligatorios"})
		}
		h.log.Error().Err(err).Str("op", "createJob").Str("company_id", companyID).Msg("crear vacante")
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vacantes (público, con filtros de igualdad)
// @Tags         jobs
// @Produce      json
// @Param        type        query  string  false  "Tipo de vacante"
// @Param        category    query  string  false  "Categoría"
// @Param        experience  query  string  false  "Experiencia"
// @Param        location    query  string  false  "Ubicación"
// @Param        company_id  query  string  false  "Empresa"
// @Param        closed      query  bool    false  "Estado"
// @Success      200  {object}  dto.JobsEnvelope
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	var filter dto.JobFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()

	jobs, err := h.uc.List(filter, page.Limit, page.Offset)
	if err != nil {
		h.log.Error().Err(err).Str("op", "listJobs").Msg("listar vacantes")
		return internalError(c)
	}
	return c.JSON(dto.JobsEnvelope{Message: "vacantes obtenidas exitosamente", Jobs: jobs})
}

// GetByID godoc
// @Summary      Obtener vacante por ID (público)
// @Tags         jobs
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.JobEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		}
		h.log.Error().Err(err).Str("op", "getJob").Str("job_id", id).Msg("obtener vacante")
		return internalError(c)
	}
	return c.JSON(dto.JobEnvelope{Message: "vacante obtenida exitosamente", Job: *out})
}

// Update godoc
// @Summary      Actualizar vacante (solo empresa dueña)
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la vacante"
// @Param        body  body  dto.UpdateJobRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.JobEnvelope
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	companyID := GetPrincipalID(c)
	id := c.Params("id")
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos de actualización inválidos"})
	}
	out, err := h.uc.Update(companyID, id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vacante pertenece a otra empresa"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos de actualización inválidos"})
		}
		h.log.Error().Err(err).Str("op", "updateJob").Str("job_id", id).Str("company_id", companyID).Msg("actualizar vacante")
		return internalError(c)
	}
	return c.JSON(dto.JobEnvelope{Message: "vacante actualizada exitosamente", Job: *out})
}

// Close godoc
// @Summary      Cerrar vacante (solo empresa dueña, idempotente)
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/close [post]
func (h *JobHandler) Close(c *fiber.Ctx) error {
	companyID := GetPrincipalID(c)
	id := c.Params("id")
	if err := h.uc.Close(companyID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vacante pertenece a otra empresa"})
		}
		h.log.Error().Err(err).Str("op", "closeJob").Str("job_id", id).Str("company_id", companyID).Msg("cerrar vacante")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "vacante cerrada exitosamente"})
}

// Delete godoc
// @Summary      Eliminar vacante en cascada (solo empresa dueña)
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vacante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	companyID := GetPrincipalID(c)
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), companyID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacante no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vacante pertenece a otra empresa"})
		}
		h.log.Error().Err(err).Str("op", "deleteJob").Str("job_id", id).Str("company_id", companyID).Msg("eliminar vacante")
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "vacante eliminada exitosamente"})
}

// internalError respuesta 500 con mensaje estable: nunca se expone el error crudo.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
