package dto

import "github.com/shopspring/decimal"

// CreateProjectRequest body de POST /api/projects (et PUT /api/projects/:id).
type CreateProjectRequest struct {
	Name      string           `json:"name"`
	Client    string           `json:"client,omitempty"`
	Status    string           `json:"status,omitempty"`
	StartDate string           `json:"startDate,omitempty"` // AAAA-MM-JJ
	EndDate   string           `json:"endDate,omitempty"`   // AAAA-MM-JJ
	Budget    *decimal.Decimal `json:"budget,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// ProjectResponse projet en réponse.
type ProjectResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Client    string           `json:"client,omitempty"`
	Status    string           `json:"status"`
	StartDate string           `json:"startDate,omitempty"`
	EndDate   string           `json:"endDate,omitempty"`
	Budget    *decimal.Decimal `json:"budget,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}
