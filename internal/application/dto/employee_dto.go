package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body de POST /api/employees (et PUT /api/employees/:id).
type CreateEmployeeRequest struct {
	Name      string           `json:"name"`
	Role      string           `json:"role,omitempty"`
	Email     string           `json:"email,omitempty"`
	DailyRate *decimal.Decimal `json:"dailyRate,omitempty"`
	Active    *bool            `json:"active,omitempty"`
}

// EmployeeResponse employé en réponse.
type EmployeeResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Role      string           `json:"role,omitempty"`
	Email     string           `json:"email,omitempty"`
	DailyRate *decimal.Decimal `json:"dailyRate,omitempty"`
	Active    bool             `json:"active"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}
