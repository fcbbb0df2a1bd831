package repository

import "github.com/empleolibre/empleo-api/internal/domain/entity"

// JobFilter filtros de igualdad permitidos para el listado público.
// Solo estos campos son filtrables; cualquier otro parámetro del caller se ignora.
type JobFilter struct {
	Type       string
	Category   string
	Experience string
	Location   string
	CompanyID  string
	Closed     *bool // nil = no filtrar por estado
}

// JobRepository define el puerto de persistencia para Job.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(id string) (*entity.Job, error)
	// GetListing resuelve además la proyección de la empresa (name, email).
	GetListing(id string) (*entity.JobListing, error)
	List(filter JobFilter, limit, offset int) ([]*entity.JobListing, error)
	Update(job *entity.Job) error
	SetClosed(id string) error
	Delete(id string) error
}
