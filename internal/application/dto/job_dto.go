package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobRequirementsRequest detalle obligatorio de una vacante al crearla.
// PostDate y OfferedSalary se validan en el use case (el validador no cubre
// cero de time.Time ni de decimal.Decimal).
type JobRequirementsRequest struct {
	Type          string          `json:"type" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	Experience    string          `json:"experience" validate:"required"`
	Location      string          `json:"location" validate:"required"`
	PostDate      time.Time       `json:"post_date"`
	OfferedSalary decimal.Decimal `json:"offered_salary"`
	Description   string          `json:"description" validate:"required"`
}

// CreateJobRequest entrada para crear una vacante.
type CreateJobRequest struct {
	Title        string                 `json:"title" validate:"required,min=1,max=200"`
	Requirements JobRequirementsRequest `json:"requirements" validate:"required"`
}

// UpdateJobRequest entrada para actualizar una vacante (parcial; closed no se toca aquí).
type UpdateJobRequest struct {
	Title         *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Type          *string          `json:"type" validate:"omitempty,min=1"`
	Category      *string          `json:"category" validate:"omitempty,min=1"`
	Experience    *string          `json:"experience" validate:"omitempty,min=1"`
	Location      *string          `json:"location" validate:"omitempty,min=1"`
	PostDate      *time.Time       `json:"post_date"`
	OfferedSalary *decimal.Decimal `json:"offered_salary"`
	Description   *string          `json:"description" validate:"omitempty,min=1"`
}

// JobFilterRequest filtros de igualdad permitidos en el listado público.
// Cualquier otro query param se ignora (whitelist).
type JobFilterRequest struct {
	Type       string `query:"type"`
	Category   string `query:"category"`
	Experience string `query:"experience"`
	Location   string `query:"location"`
	CompanyID  string `query:"company_id"`
	Closed     *bool  `query:"closed"`
}

// CompanySummary proyección de la empresa para mostrar junto a la vacante.
type CompanySummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JobResponse salida de una vacante.
type JobResponse struct {
	ID           string                  `json:"id"`
	CompanyID    string                  `json:"company_id"`
	Title        string                  `json:"title"`
	Requirements JobRequirementsResponse `json:"requirements"`
	Closed       bool                    `json:"closed"`
	Company      *CompanySummary         `json:"company,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// JobRequirementsResponse detalle de la vacante en respuestas.
type JobRequirementsResponse struct {
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Experience    string          `json:"experience"`
	Location      string          `json:"location"`
	PostDate      time.Time       `json:"post_date"`
	OfferedSalary decimal.Decimal `json:"offered_salary"`
	Description   string          `json:"description"`
}

// CreateJobResponse respuesta de creación: mensaje + ID de la vacante nueva.
type CreateJobResponse struct {
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}

// JobEnvelope respuesta con una vacante bajo la clave "job".
type JobEnvelope struct {
	Message string      `json:"message"`
	Job     JobResponse `json:"job"`
}

// JobsEnvelope respuesta con la lista de vacantes bajo la clave "jobs".
type JobsEnvelope struct {
	Message string        `json:"message"`
	Jobs    []JobResponse `json:"jobs"`
}

// ApplicantResponse perfil público de un postulante (sin credenciales).
type ApplicantResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	PictureURL string    `json:"picture_url"`
	ResumeURL  string    `json:"resume_url"`
	AppliedAt  time.Time `json:"applied_at"`
}

// ApplicantsEnvelope respuesta con los postulantes bajo la clave "applicants".
type ApplicantsEnvelope struct {
	Message    string              `json:"message"`
	Applicants []ApplicantResponse `json:"applicants"`
}

// AppliedJobsEnvelope respuesta con los IDs de vacantes aplicadas por el postulante.
type AppliedJobsEnvelope struct {
	Message     string   `json:"message"`
	AppliedJobs []string `json:"applied_jobs"`
}
