package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense représente une dépense de production (location, défraiement...).
type Expense struct {
	ID        string
	Label     string
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	ProjectID string // Référence projet optionnelle
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
