package usecase

import (
	"time"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
)

// ApplicationUseCase postulaciones: aplicar a una vacante abierta exactamente una
// vez y exponer el listado de postulantes solo a la empresa dueña.
type ApplicationUseCase struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) *ApplicationUseCase {
	return &ApplicationUseCase{jobRepo: jobRepo, appRepo: appRepo}
}

// Apply registra la postulación del usuario a la vacante.
// Falla con ErrNotFound si la vacante no existe, ErrJobClosed si está cerrada y
// ErrAlreadyApplied si ya se postuló. La fila única mantiene consistentes ambos
// lados de la relación; un segundo Apply concurrente cae en el constraint único.
func (uc *ApplicationUseCase) Apply(userID, jobID string) error {
	job, err := uc.jobRepo.GetByID(jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	if job.Closed {
		return domain.ErrJobClosed
	}
	applied, err := uc.appRepo.Exists(jobID, userID)
	if err != nil {
		return err
	}
	if applied {
		return domain.ErrAlreadyApplied
	}
	return uc.appRepo.Add(&entity.Application{
		JobID:     jobID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
}

// ListApplicants devuelve los postulantes de la vacante como perfil público
// (sin credenciales). Solo la empresa dueña puede consultarlos.
func (uc *ApplicationUseCase) ListApplicants(companyID, jobID string) ([]dto.ApplicantResponse, error) {
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
	profiles, err := uc.appRepo.ListApplicants(jobID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicantResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, dto.ApplicantResponse{
			ID:         p.ID,
			Name:       p.Name,
			Email:      p.Email,
			PictureURL: p.PictureURL,
			ResumeURL:  p.ResumeURL,
			AppliedAt:  p.AppliedAt,
		})
	}
	return items, nil
}

// AppliedJobs devuelve los IDs de vacantes a las que el postulante ha aplicado.
func (uc *ApplicationUseCase) AppliedJobs(userID string) ([]string, error) {
	return uc.appRepo.ListJobIDsByUser(userID)
}
