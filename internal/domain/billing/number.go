package billing

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultPrefix préfixe par défaut des numéros de facture.
const DefaultPrefix = "NOM"

var numberPattern = regexp.MustCompile(`^([A-Z]+)-(\d{4})-(\d{3,})$`)

// FormatNumber formate un numéro de facture : PREFIX-AAAA-NNN,
// suffixe complété à 3 chiffres minimum (la 1000e facture donne -1000).
func FormatNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// ParseNumber décompose un numéro PREFIX-AAAA-NNN.
// Retourne false si le format ne correspond pas.
func ParseNumber(number string) (prefix string, year, seq int, ok bool) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return "", 0, 0, false
	}
	year, _ = strconv.Atoi(m[2])
	seq, _ = strconv.Atoi(m[3])
	return m[1], year, seq, true
}
