package billing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var frPrinter = message.NewPrinter(language.French)

// FormatAmount formate un montant en convention française, à 2 décimales :
// 2400 → "2 400,00". Utilisé pour l'affichage (PDF, emails) uniquement ;
// la conversion en float ne touche jamais l'arithmétique.
func FormatAmount(d decimal.Decimal) string {
	return frPrinter.Sprint(number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatAmountMAD ajoute la devise : "2 400,00 MAD".
func FormatAmountMAD(d decimal.Decimal) string {
	return FormatAmount(d) + " MAD"
}
