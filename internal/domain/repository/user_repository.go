package repository

import "github.com/empleolibre/empleo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (postulante).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
