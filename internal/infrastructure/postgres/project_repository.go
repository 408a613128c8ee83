package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implémentation de ProjectRepository sur PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un nouveau projet.
func (r *ProjectRepo) Create(project *entity.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO projects (id, name, client, status, start_date, end_date, budget, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Client, project.Status,
		project.StartDate, project.EndDate, project.Budget,
		nullIfEmpty(project.Notes), project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID retourne un projet par ID, ou nil si absent.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	const query = `
		SELECT id, name, COALESCE(client, ''), status, start_date, end_date,
		       budget, COALESCE(notes, ''), created_at, updated_at
		FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Client, &p.Status, &p.StartDate, &p.EndDate,
		&p.Budget, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List retourne les projets, les plus récents d'abord.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	const query = `
		SELECT id, name, COALESCE(client, ''), status, start_date, end_date,
		       budget, COALESCE(notes, ''), created_at, updated_at
		FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Client, &p.Status, &p.StartDate, &p.EndDate,
			&p.Budget, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update écrase tous les champs éditables du projet.
func (r *ProjectRepo) Update(project *entity.Project) error {
	const query = `
		UPDATE projects
		SET name = $2, client = $3, status = $4, start_date = $5, end_date = $6,
		    budget = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Client, project.Status,
		project.StartDate, project.EndDate, project.Budget,
		nullIfEmpty(project.Notes), project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete supprime un projet.
func (r *ProjectRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
