package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// currencySymbols lists prefixes stripped before numeric parsing.
var currencySymbols = []string{"£", "$", "€"}

// ParseAmount converts a raw field into a monetary value. A leading currency
// symbol is stripped and unparsable input coerces to 0 so a single bad cell
// never fails a whole import.
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	for _, sym := range currencySymbols {
		s = strings.TrimPrefix(s, sym)
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatGBP renders an amount as pounds with two decimal places.
func FormatGBP(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-£%.2f", -amount)
	}
	return fmt.Sprintf("£%.2f", amount)
}

// FormatPercent renders a percentage with two decimal places.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// Round2 rounds to the nearest 0.01.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to the nearest 0.1.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
