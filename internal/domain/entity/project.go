package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts de projet.
const (
	ProjectStatusOngoing   = "en_cours"
	ProjectStatusCompleted = "termine"
	ProjectStatusCancelled = "annule"
)

// Project représente une production (tournage, montage, prestation).
type Project struct {
	ID        string
	Name      string
	Client    string
	Status    string
	StartDate time.Time
	EndDate   time.Time
	Budget    decimal.NullDecimal
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
