package repository

import "github.com/nomadeprod/backoffice-api/internal/domain/entity"

// EmployeeRepository définit le port de persistance des employés.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
