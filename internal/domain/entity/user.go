package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User représente un compte utilisateur du back office.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
