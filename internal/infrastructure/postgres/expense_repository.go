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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implémentation d'ExpenseRepository sur PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste une nouvelle dépense.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO expenses (id, label, category, amount, date, project_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Label, expense.Category, expense.Amount, expense.Date,
		nullIfEmpty(expense.ProjectID), nullIfEmpty(expense.Notes),
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID retourne une dépense par ID, ou nil si absente.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	const query = `
		SELECT id, label, COALESCE(category, ''), amount, date,
		       COALESCE(project_id, ''), COALESCE(notes, ''), created_at, updated_at
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Label, &e.Category, &e.Amount, &e.Date,
		&e.ProjectID, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List retourne les dépenses, les plus récentes d'abord.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	const query = `
		SELECT id, label, COALESCE(category, ''), amount, date,
		       COALESCE(project_id, ''), COALESCE(notes, ''), created_at, updated_at
		FROM expenses ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.Label, &e.Category, &e.Amount, &e.Date,
			&e.ProjectID, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update écrase tous les champs éditables de la dépense.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	const query = `
		UPDATE expenses
		SET label = $2, category = $3, amount = $4, date = $5, project_id = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Label, expense.Category, expense.Amount, expense.Date,
		nullIfEmpty(expense.ProjectID), nullIfEmpty(expense.Notes), expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete supprime une dépense.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
