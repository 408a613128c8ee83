package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/domain"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

// ExpenseUseCase cas d'usage CRUD des dépenses.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construit le cas d'usage.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create crée une nouvelle dépense.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Label == "" || !in.Amount.IsPositive() || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		Label:     in.Label,
		Category:  in.Category,
		Amount:    in.Amount.Round(2),
		Date:      date,
		ProjectID: in.ProjectID,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID retourne une dépense par ID.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// List retourne les dépenses paginées.
func (uc *ExpenseUseCase) List(page dto.PageRequest) ([]*dto.ExpenseResponse, error) {
	page.DefaultPage()
	expenses, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Update met à jour une dépense.
func (uc *ExpenseUseCase) Update(id string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Label != "" {
		expense.Label = in.Label
	}
	if in.Category != "" {
		expense.Category = in.Category
	}
	if in.Amount.IsPositive() {
		expense.Amount = in.Amount.Round(2)
	}
	if in.Date != "" {
		date, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expense.Date = date
	}
	if in.ProjectID != "" {
		expense.ProjectID = in.ProjectID
	}
	if in.Notes != "" {
		expense.Notes = in.Notes
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete supprime une dépense.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		Label:     e.Label,
		Category:  e.Category,
		Amount:    e.Amount,
		Date:      e.Date.Format(dateLayout),
		ProjectID: e.ProjectID,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
