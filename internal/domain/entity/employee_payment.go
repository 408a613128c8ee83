package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeePayment associe une facture à un employé à payer sur son produit.
// Lecture seule dans le flux facturation : créé via l'affectation de
// paiements, jamais modifié par la création/mise à jour de facture.
type EmployeePayment struct {
	ID           string
	InvoiceID    string
	EmployeeID   string
	EmployeeName string // Dénormalisé pour l'affichage
	Amount       decimal.Decimal
	Status       string // pending | paid
	CreatedAt    time.Time
}
