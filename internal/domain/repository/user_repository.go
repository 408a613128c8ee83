package repository

import "github.com/nomadeprod/backoffice-api/internal/domain/entity"

// UserRepository définit le port de persistance des utilisateurs.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
