package entity

import "time"

// Application registra la postulación de un usuario a una vacante.
// La fila es a la vez la pertenencia en Job.applicants y en User.appliedJobs:
// ambos lados de la relación se mantienen consistentes por construcción.
type Application struct {
	JobID     string
	UserID    string
	CreatedAt time.Time
}
