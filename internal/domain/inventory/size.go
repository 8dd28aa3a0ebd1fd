package inventory

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseSize convierte una medida nominal de tubería a su valor numérico para
// ordenar correctamente: `1-1/2"` -> 1.5, `3/4"` -> 0.75, `10"` -> 10.
// Cadenas no reconocidas valen 0.
func ParseSize(sizeStr string) decimal.Decimal {
	clean := strings.TrimSpace(strings.ReplaceAll(sizeStr, `"`, ""))

	// Número mixto: "1-1/4"
	if strings.Contains(clean, "-") && strings.Contains(clean, "/") {
		parts := strings.SplitN(clean, "-", 2)
		integer, err := decimal.NewFromString(parts[0])
		if err != nil {
			return decimal.Zero
		}
		frac := parseFraction(parts[1])
		return integer.Add(frac)
	}

	// Fracción simple: "1/2"
	if strings.Contains(clean, "/") {
		return parseFraction(clean)
	}

	n, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return n
}

func parseFraction(s string) decimal.Decimal {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return decimal.Zero
	}
	num, err1 := decimal.NewFromString(strings.TrimSpace(parts[0]))
	den, err2 := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, 6)
}

// SortSizes ordena medidas in-place por su valor numérico ascendente.
func SortSizes(sizes []string) {
	sort.SliceStable(sizes, func(i, j int) bool {
		return ParseSize(sizes[i]).LessThan(ParseSize(sizes[j]))
	})
}
