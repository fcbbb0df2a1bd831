package repository

import "github.com/empleolibre/empleo-api/internal/domain/entity"

// ApplicationRepository define el puerto de persistencia para las postulaciones.
type ApplicationRepository interface {
	// Add inserta la postulación. Devuelve domain.ErrAlreadyApplied si ya existe
	// (constraint único job_id+user_id: dos Apply concurrentes no duplican).
	Add(app *entity.Application) error
	Exists(jobID, userID string) (bool, error)
	// ListApplicants resuelve los postulantes de una vacante a su perfil público.
	ListApplicants(jobID string) ([]*entity.ApplicantProfile, error)
	ListJobIDsByUser(userID string) ([]string, error)
	DeleteByJob(jobID string) error
}
