package repository

import "github.com/nomadeprod/backoffice-api/internal/domain/entity"

// ProjectRepository définit le port de persistance des projets.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}
