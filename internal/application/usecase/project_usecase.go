package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/domain"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProjectUseCase cas d'usage CRUD des projets.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase construit le cas d'usage.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Create crée un nouveau projet.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusOngoing
	}
	start, end, err := parseProjectDates(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Client:    in.Client,
		Status:    status,
		StartDate: start,
		EndDate:   end,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Budget != nil {
		project.Budget = decimal.NewNullDecimal(*in.Budget)
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID retourne un projet par ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List retourne les projets paginés.
func (uc *ProjectUseCase) List(page dto.PageRequest) ([]*dto.ProjectResponse, error) {
	page.DefaultPage()
	projects, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update écrase les champs du projet avec le payload complet.
func (uc *ProjectUseCase) Update(id string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		project.Name = in.Name
	}
	if in.Client != "" {
		project.Client = in.Client
	}
	if in.Status != "" {
		project.Status = in.Status
	}
	start, end, err := parseProjectDates(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if !start.IsZero() {
		project.StartDate = start
	}
	if !end.IsZero() {
		project.EndDate = end
	}
	if in.Budget != nil {
		project.Budget = decimal.NewNullDecimal(*in.Budget)
	}
	if in.Notes != "" {
		project.Notes = in.Notes
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete supprime un projet.
func (uc *ProjectUseCase) Delete(id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func parseProjectDates(start, end string) (time.Time, time.Time, error) {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = time.Parse(dateLayout, start); err != nil {
			return s, e, domain.ErrInvalidInput
		}
	}
	if end != "" {
		if e, err = time.Parse(dateLayout, end); err != nil {
			return s, e, domain.ErrInvalidInput
		}
	}
	return s, e, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Client:    p.Client,
		Status:    p.Status,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if !p.StartDate.IsZero() {
		resp.StartDate = p.StartDate.Format(dateLayout)
	}
	if !p.EndDate.IsZero() {
		resp.EndDate = p.EndDate.Format(dateLayout)
	}
	if p.Budget.Valid {
		resp.Budget = &p.Budget.Decimal
	}
	return resp
}
