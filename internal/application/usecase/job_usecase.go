package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		jobRepo repository.JobRepository,
		appRepo repository.ApplicationRepository,
	) error) error
}

// JobUseCase ciclo de vida de vacantes: crear, editar, cerrar y eliminar (solo la
// empresa dueña) más el listado público con filtros.
type JobUseCase struct {
	jobRepo repository.JobRepository
	tx      TxRunner
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(jobRepo repository.JobRepository, tx TxRunner) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, tx: tx}
}

// Create crea una vacante para la empresa autenticada. Todos los campos del
// requerimiento son obligatorios; closed inicia en false y sin postulantes.
func (uc *JobUseCase) Create(companyID string, in dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	req := in.Requirements
	if in.Title == "" || req.Type == "" || req.Category == "" || req.Experience == "" ||
		req.Location == "" || req.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.PostDate.IsZero() || !req.OfferedSalary.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	job := &entity.Job{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Title:     in.Title,
		Requirements: entity.JobRequirements{
			Type:          req.Type,
			Category:      req.Category,
			Experience:    req.Experience,
			Location:      req.Location,
			PostDate:      req.PostDate,
			OfferedSalary: req.OfferedSalary,
			Description:   req.Description,
		},
		Closed:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return &dto.CreateJobResponse{Message: "vacante creada exitosamente", JobID: job.ID}, nil
}

// GetByID obtiene una vacante con la proyección de su empresa.
func (uc *JobUseCase) GetByID(jobID string) (*dto.JobResponse, error) {
	listing, err := uc.jobRepo.GetListing(jobID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}
	return toJobResponse(listing), nil
}

// List lista vacantes con filtros de igualdad (solo campos permitidos) y paginación.
func (uc *JobUseCase) List(in dto.JobFilterRequest, limit, offset int) ([]dto.JobResponse, error) {
	filter := repository.JobFilter{
		Type:       in.Type,
		Category:   in.Category,
		Experience: in.Experience,
		Location:   in.Location,
		CompanyID:  in.CompanyID,
		Closed:     in.Closed,
	}
	listings, err := uc.jobRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(listings))
	for _, l := range listings {
		items = append(items, *toJobResponse(l))
	}
	return items, nil
}

// Update aplica un patch sobre la vacante. Solo la empresa dueña puede editarla.
func (uc *JobUseCase) Update(companyID, jobID string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.ownedJob(companyID, jobID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Type != nil {
		job.Requirements.Type = *in.Type
	}
	if in.Category != nil {
		job.Requirements.Category = *in.Category
	}
	if in.Experience != nil {
		job.Requirements.Experience = *in.Experience
	}
	if in.Location != nil {
		job.Requirements.Location = *in.Location
	}
	if in.PostDate != nil {
		job.Requirements.PostDate = *in.PostDate
	}
	if in.OfferedSalary != nil {
		if !in.OfferedSalary.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		job.Requirements.OfferedSalary = *in.OfferedSalary
	}
	if in.Description != nil {
		job.Requirements.Description = *in.Description
	}
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	out := toJobResponse(&entity.JobListing{Job: *job})
	out.Company = nil
	return out, nil
}

// Close marca la vacante como cerrada (no acepta más postulaciones). Idempotente:
// cerrar una vacante ya cerrada es éxito, no error.
func (uc *JobUseCase) Close(companyID, jobID string) error {
	if _, err := uc.ownedJob(companyID, jobID); err != nil {
		return err
	}
	return uc.jobRepo.SetClosed(jobID)
}

// Delete elimina la vacante y en cascada toda referencia a ella: primero las
// postulaciones (lado Job.applicants y User.appliedJobs a la vez), al final la
// vacante misma, todo en una transacción.
func (uc *JobUseCase) Delete(ctx context.Context, companyID, jobID string) error {
	if _, err := uc.ownedJob(companyID, jobID); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) error {
		if err := appRepo.DeleteByJob(jobID); err != nil {
			return err
		}
		return jobRepo.Delete(jobID)
	})
}

// ownedJob carga la vacante y verifica que pertenezca a la empresa.
func (uc *JobUseCase) ownedJob(companyID, jobID string) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return job, nil
}

func toJobResponse(l *entity.JobListing) *dto.JobResponse {
	if l == nil {
		return nil
	}
	out := &dto.JobResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		Title:     l.Title,
		Requirements: dto.JobRequirementsResponse{
			Type:          l.Requirements.Type,
			Category:      l.Requirements.Category,
			Experience:    l.Requirements.Experience,
			Location:      l.Requirements.Location,
			PostDate:      l.Requirements.PostDate,
			OfferedSalary: l.Requirements.OfferedSalary,
			Description:   l.Requirements.Description,
		},
		Closed:    l.Closed,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.CompanyName != "" || l.CompanyEmail != "" {
		out.Company = &dto.CompanySummary{Name: l.CompanyName, Email: l.CompanyEmail}
	}
	return out
}
