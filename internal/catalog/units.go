package catalog

import "strings"

// unitPair keys the directed conversion table.
type unitPair struct {
	from string
	to   string
}

// conversions holds the only recognised unit conversions. Anything else is
// treated as already being in the catalog unit (factor 1), reproducing the
// silently-skip behaviour of the source sheets.
var conversions = map[unitPair]float64{
	{"g", "kg"}:     1.0 / 1000,
	{"kg", "g"}:     1000,
	{"ml", "liter"}: 1.0 / 1000,
	{"liter", "ml"}: 1000,
}

// ConversionFactor returns the multiplier converting a quantity in from-units
// into to-units. Unknown pairs return 1.
func ConversionFactor(from, to string) float64 {
	f := strings.ToLower(strings.TrimSpace(from))
	t := strings.ToLower(strings.TrimSpace(to))
	if f == t {
		return 1
	}
	if factor, ok := conversions[unitPair{f, t}]; ok {
		return factor
	}
	return 1
}
