package postgres

import (
	"context"
	"fmt"

	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones.
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Add inserta la postulación. El constraint único (job_id, user_id) garantiza que
// dos Apply concurrentes del mismo usuario no dupliquen la fila.
func (r *ApplicationRepo) Add(app *entity.Application) error {
	query := `INSERT INTO applications (job_id, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, app.JobID, app.UserID, app.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// Exists informa si el usuario ya se postuló a la vacante.
func (r *ApplicationRepo) Exists(jobID, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`,
		jobID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return exists, nil
}

// ListApplicants resuelve los postulantes de una vacante a su perfil público
// (nunca selecciona password_hash).
func (r *ApplicationRepo) ListApplicants(jobID string) ([]*entity.ApplicantProfile, error) {
	query := `
		SELECT u.id, u.name, u.email, u.picture_url, u.resume_url, a.created_at
		FROM applications a JOIN users u ON u.id = a.user_id
		WHERE a.job_id = $1 ORDER BY a.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	var list []*entity.ApplicantProfile
	for rows.Next() {
		var p entity.ApplicantProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.PictureURL, &p.ResumeURL, &p.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListJobIDsByUser devuelve los IDs de vacantes a las que el usuario se ha postulado.
func (r *ApplicationRepo) ListJobIDsByUser(userID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT job_id FROM applications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list applied jobs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan applied job: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteByJob elimina todas las postulaciones de una vacante (cascada de deleteJob).
func (r *ApplicationRepo) DeleteByJob(jobID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM applications WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("delete applications by job: %w", err)
	}
	return nil
}
