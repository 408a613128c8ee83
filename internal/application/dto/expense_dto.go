package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body de POST /api/expenses (et PUT /api/expenses/:id).
type CreateExpenseRequest struct {
	Label     string          `json:"label"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"` // AAAA-MM-JJ
	ProjectID string          `json:"projectId,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// ExpenseResponse dépense en réponse.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	ProjectID string          `json:"projectId,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}
