package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts du cycle de vie d'une facture.
const (
	InvoiceStatusDraft   = "draft"   // Créée, jamais envoyée au client
	InvoiceStatusPending = "pending" // Envoyée, en attente de paiement
	InvoiceStatusPaid    = "paid"    // Payée — suppression interdite
	InvoiceStatusOverdue = "overdue" // Échéance dépassée sans paiement
)

// ValidInvoiceStatus indique si s est un statut de facture connu.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice représente l'en-tête d'une facture client.
// Amount est le sous-total HT, TaxAmount la TVA (20%), TotalAmount le TTC.
type Invoice struct {
	ID             string
	Number         string // Format NOM-AAAA-NNN, unique, séquentiel par année
	Client         string
	ClientICE      string // Identifiant fiscal du client (optionnel)
	Project        string // Nom du projet (dénormalisé, optionnel)
	ProjectID      string // Référence projet (optionnelle, non contrainte)
	Amount         decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	IssueDate      time.Time
	DueDate        time.Time
	Status         string
	ProfitMargin   decimal.NullDecimal // Marge prévisionnelle en % (optionnelle)
	EstimatedCosts decimal.NullDecimal // Coûts estimés du projet (optionnels)
	TeamMembers    []string            // Noms des membres de l'équipe (dénormalisés)
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InvoicePatch porte une mise à jour partielle : nil = champ absent,
// non-nil = champ fourni (y compris vide). Les totaux ne sont renseignés
// que par le recalcul serveur lors d'un remplacement de lignes.
type InvoicePatch struct {
	Client         *string
	ClientICE      *string
	Project        *string
	ProjectID      *string
	IssueDate      *time.Time
	DueDate        *time.Time
	Status         *string
	ProfitMargin   *decimal.Decimal
	EstimatedCosts *decimal.Decimal
	TeamMembers    *[]string
	Notes          *string
	Amount         *decimal.Decimal
	TaxAmount      *decimal.Decimal
	TotalAmount    *decimal.Decimal
}

// InvoiceStats agrégats par statut pour le tableau de bord.
type InvoiceStats struct {
	TotalCount    int
	TotalAmount   decimal.Decimal
	TotalTax      decimal.Decimal
	TotalBilled   decimal.Decimal
	CountByStatus map[string]int
	SumByStatus   map[string]decimal.Decimal // somme des montants TTC
}
