package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadeprod/backoffice-api/internal/domain/billing"
)

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals est le cœur arithmétique de la facturation : si quelqu'un
// modifie le taux de TVA, l'arrondi ou la somme des lignes, ces tests doivent
// échouer immédiatement.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotals_ListeVide(t *testing.T) {
	got := billing.ComputeTotals(nil)
	assert.True(t, got.Amount.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.TotalAmount.IsZero())
}

func TestComputeTotals_ScenarioTournage(t *testing.T) {
	// Tournage : 2 jours à 1000 → HT 2000, TVA 400, TTC 2400.
	got := billing.ComputeTotals([]billing.Line{
		{UnitPrice: dec("1000"), Quantity: dec("2")},
	})
	assert.True(t, got.Amount.Equal(dec("2000")), "HT = %s", got.Amount)
	assert.True(t, got.TaxAmount.Equal(dec("400")), "TVA = %s", got.TaxAmount)
	assert.True(t, got.TotalAmount.Equal(dec("2400")), "TTC = %s", got.TotalAmount)
}

func TestComputeTotals_PlusieursLignes(t *testing.T) {
	cases := []struct {
		name                  string
		lines                 []billing.Line
		amount, tax, total    string
	}{
		{
			name: "tournage et montage",
			lines: []billing.Line{
				{UnitPrice: dec("1000"), Quantity: dec("3")},
				{UnitPrice: dec("450.50"), Quantity: dec("2")},
			},
			amount: "3901.00", tax: "780.20", total: "4681.20",
		},
		{
			name: "quantité fractionnaire, arrondi par ligne",
			lines: []billing.Line{
				// 333.33 × 1.5 = 499.995 → 500.00 par ligne
				{UnitPrice: dec("333.33"), Quantity: dec("1.5")},
			},
			amount: "500.00", tax: "100.00", total: "600.00",
		},
		{
			name: "TVA arrondie au demi-supérieur",
			lines: []billing.Line{
				// HT 10.01 → TVA brute 2.002 → 2.00
				{UnitPrice: dec("10.01"), Quantity: dec("1")},
			},
			amount: "10.01", tax: "2.00", total: "12.01",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.ComputeTotals(tc.lines)
			assert.True(t, got.Amount.Equal(dec(tc.amount)), "HT = %s, attendu %s", got.Amount, tc.amount)
			assert.True(t, got.TaxAmount.Equal(dec(tc.tax)), "TVA = %s, attendu %s", got.TaxAmount, tc.tax)
			assert.True(t, got.TotalAmount.Equal(dec(tc.total)), "TTC = %s, attendu %s", got.TotalAmount, tc.total)
		})
	}
}

// La propriété TTC = HT + TVA doit tenir pour toute liste, y compris après arrondi.
func TestComputeTotals_InvariantTTC(t *testing.T) {
	lines := []billing.Line{
		{UnitPrice: dec("19.99"), Quantity: dec("7")},
		{UnitPrice: dec("0.01"), Quantity: dec("3")},
		{UnitPrice: dec("1234.56"), Quantity: dec("0.25")},
	}
	got := billing.ComputeTotals(lines)
	require.True(t, got.TotalAmount.Equal(got.Amount.Add(got.TaxAmount)))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, billing.LineTotal(billing.Line{UnitPrice: dec("1000"), Quantity: dec("2")}).Equal(dec("2000")))
	assert.True(t, billing.LineTotal(billing.Line{UnitPrice: dec("0.105"), Quantity: dec("1")}).Equal(dec("0.11")))
}
