package entity

import "github.com/shopspring/decimal"

// InvoiceItem représente une ligne facturable d'une facture.
// Les lignes sont remplacées en bloc à chaque modification du détail :
// pas de mise à jour partielle ligne à ligne.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Total       decimal.Decimal // UnitPrice × Quantity, recalculé côté serveur
}
