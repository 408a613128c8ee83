// Package billing contient la logique pure de facturation : calcul des
// totaux (TVA 20%) et numérotation séquentielle NOM-AAAA-NNN.
//
// Politique d'arrondi : tous les montants sont des decimal.Decimal arrondis
// au demi-supérieur à 2 décimales à chaque étape (total de ligne, sous-total,
// TVA, TTC). Aucun montant ne transite par un float.
package billing

import "github.com/shopspring/decimal"

// TaxRate taux de TVA fixe appliqué au sous-total (20%).
var TaxRate = decimal.New(20, -2)

// Totals résultat du calcul : HT, TVA, TTC.
type Totals struct {
	Amount      decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// Line une ligne facturable vue du calculateur.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// LineTotal calcule le total d'une ligne : PrixUnitaire × Quantité, arrondi à 2 décimales.
func LineTotal(l Line) decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity).Round(2)
}

// ComputeTotals calcule (HT, TVA, TTC) à partir des lignes.
// Liste vide → zéros (la création de facture exige par ailleurs au moins une ligne).
func ComputeTotals(lines []Line) Totals {
	amount := decimal.Zero
	for _, l := range lines {
		amount = amount.Add(LineTotal(l))
	}
	amount = amount.Round(2)
	tax := amount.Mul(TaxRate).Round(2)
	return Totals{
		Amount:      amount,
		TaxAmount:   tax,
		TotalAmount: amount.Add(tax).Round(2),
	}
}
