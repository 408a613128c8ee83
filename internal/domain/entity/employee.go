package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee représente un membre de l'équipe (permanent ou intermittent).
type Employee struct {
	ID        string
	Name      string
	Role      string // cadreur, monteur, chargé de production...
	Email     string
	DailyRate decimal.NullDecimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
