package billing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomadeprod/backoffice-api/internal/domain/billing"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "NOM-2024-001", billing.FormatNumber("NOM", 2024, 1))
	assert.Equal(t, "NOM-2024-042", billing.FormatNumber("NOM", 2024, 42))
	assert.Equal(t, "NOM-2025-999", billing.FormatNumber("NOM", 2025, 999))
	// Au-delà de 999 le suffixe s'allonge, pas de troncature.
	assert.Equal(t, "NOM-2025-1000", billing.FormatNumber("NOM", 2025, 1000))
}

func TestParseNumber(t *testing.T) {
	prefix, year, seq, ok := billing.ParseNumber("NOM-2024-007")
	require.True(t, ok)
	assert.Equal(t, "NOM", prefix)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, seq)

	for _, bad := range []string{"", "NOM-2024", "nom-2024-001", "NOM-24-001", "NOM-2024-1"} {
		_, _, _, ok := billing.ParseNumber(bad)
		assert.False(t, ok, "%q ne doit pas être accepté", bad)
	}
}

// Une allocation séquentielle de N numéros sur une année doit produire des
// numéros distincts, sans trou, de -001 à -0NN.
func TestFormatNumber_SequenceSansTrou(t *testing.T) {
	seen := make(map[string]bool)
	for i := 1; i <= 25; i++ {
		n := billing.FormatNumber("NOM", 2024, i)
		require.False(t, seen[n], "doublon %s", n)
		seen[n] = true
		assert.Equal(t, fmt.Sprintf("NOM-2024-%03d", i), n)
	}
	assert.Len(t, seen, 25)
}

// FormatNumber et ParseNumber doivent rester inverses l'un de l'autre.
func TestNumber_AllerRetour(t *testing.T) {
	for _, seq := range []int{1, 99, 100, 999, 1000, 12345} {
		n := billing.FormatNumber("NOM", 2024, seq)
		prefix, year, got, ok := billing.ParseNumber(n)
		require.True(t, ok, n)
		assert.Equal(t, "NOM", prefix)
		assert.Equal(t, 2024, year)
		assert.Equal(t, seq, got)
	}
}
