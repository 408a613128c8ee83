package repository

import "github.com/nomadeprod/backoffice-api/internal/domain/entity"

// ExpenseRepository définit le port de persistance des dépenses.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(limit, offset int) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
