package entity

import "time"

// Settings profil de la société (ligne unique), utilisé par le rendu
// PDF et les emails sortants.
type Settings struct {
	ID          string
	CompanyName string
	Address     string
	TaxID       string // ICE de la société
	Email       string
	Phone       string
	SenderName  string // Nom d'expéditeur des emails
	UpdatedAt   time.Time
}
