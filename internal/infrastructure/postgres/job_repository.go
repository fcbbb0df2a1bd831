package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL (usable con pool o tx).
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para vacantes.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `j.id, j.company_id, j.title, j.req_type, j.category, j.experience,
	j.location, j.post_date, j.offered_salary, j.description, j.closed, j.created_at, j.updated_at`

// Create persiste una nueva vacante (closed inicia en false).
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, company_id, title, req_type, category, experience, location,
			post_date, offered_salary, description, closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	req := job.Requirements
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.CompanyID, job.Title, req.Type, req.Category, req.Experience,
		req.Location, req.PostDate, req.OfferedSalary, req.Description, job.Closed,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene una vacante por ID.
func (r *JobRepo) GetByID(id string) (*entity.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	job, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// GetListing obtiene una vacante con la proyección de su empresa (name, email).
func (r *JobRepo) GetListing(id string) (*entity.JobListing, error) {
	query := `
		SELECT ` + jobColumns + `, c.name, c.email
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`
	var l entity.JobListing
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.Requirements.Type, &l.Requirements.Category,
		&l.Requirements.Experience, &l.Requirements.Location, &l.Requirements.PostDate,
		&l.Requirements.OfferedSalary, &l.Requirements.Description, &l.Closed,
		&l.CreatedAt, &l.UpdatedAt, &l.CompanyName, &l.CompanyEmail,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job listing: %w", err)
	}
	return &l, nil
}

// List lista vacantes con filtros de igualdad (solo campos permitidos) y paginación.
// Resuelve la empresa de cada vacante en el mismo query.
func (r *JobRepo) List(filter repository.JobFilter, limit, offset int) ([]*entity.JobListing, error) {
	conds := []string{}
	args := []any{}

	addCond := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	addCond("j.req_type", filter.Type)
	addCond("j.category", filter.Category)
	addCond("j.experience", filter.Experience)
	addCond("j.location", filter.Location)
	addCond("j.company_id", filter.CompanyID)
	if filter.Closed != nil {
		args = append(args, *filter.Closed)
		conds = append(conds, fmt.Sprintf("j.closed = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT `+jobColumns+`, c.name, c.email
		FROM jobs j JOIN companies c ON c.id = j.company_id
		%s ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var list []*entity.JobListing
	for rows.Next() {
		var l entity.JobListing
		if err := rows.Scan(
			&l.ID, &l.CompanyID, &l.Title, &l.Requirements.Type, &l.Requirements.Category,
			&l.Requirements.Experience, &l.Requirements.Location, &l.Requirements.PostDate,
			&l.Requirements.OfferedSalary, &l.Requirements.Description, &l.Closed,
			&l.CreatedAt, &l.UpdatedAt, &l.CompanyName, &l.CompanyEmail,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza una vacante existente (no toca closed: ver SetClosed).
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET title = $2, req_type = $3, category = $4, experience = $5,
			location = $6, post_date = $7, offered_salary = $8, description = $9, updated_at = $10
		WHERE id = $1`
	req := job.Requirements
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.Title, req.Type, req.Category, req.Experience, req.Location,
		req.PostDate, req.OfferedSalary, req.Description, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// SetClosed marca la vacante como cerrada. Idempotente: cerrarla dos veces no es error.
func (r *JobRepo) SetClosed(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE jobs SET closed = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("close job: %w", err)
	}
	return nil
}

// Delete elimina una vacante por ID. Las postulaciones se eliminan antes (ver TxRunner).
func (r *JobRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*entity.Job, error) {
	var j entity.Job
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Requirements.Type, &j.Requirements.Category,
		&j.Requirements.Experience, &j.Requirements.Location, &j.Requirements.PostDate,
		&j.Requirements.OfferedSalary, &j.Requirements.Description, &j.Closed,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
