package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/bigappetite/foodcost-api/internal/money"
	"github.com/bigappetite/foodcost-api/internal/rollup"
)

// exportHeader is the flat export contract consumed by external sheets.
const exportHeader = "Menu Item, Selling Price, Food Cost, Gross Profit, GP %, Ingredients"

// ExportCSV renders the current summary as delimited text. The ingredient
// column carries the per-line cost breakdown as "name: £cost" pairs joined
// by "; ".
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	rows, err := s.Summary(ctx)
	if err != nil {
		return "", err
	}
	breakdowns := s.lineBreakdowns()

	var b strings.Builder
	b.WriteString(exportHeader)
	b.WriteByte('\n')
	for _, row := range rows {
		fmt.Fprintf(&b, "%s,%.2f,%.2f,%.2f,%.1f,%s\n",
			csvField(row.MenuItem),
			row.Price,
			row.Cost,
			row.GPPounds,
			row.GPPercent,
			csvField(breakdowns[row.MenuItem]),
		)
	}
	return b.String(), nil
}

// lineBreakdowns resolves every recipe line per menu item and serializes the
// per-ingredient costs.
func (s *Service) lineBreakdowns() map[string]string {
	cat := s.Catalog()
	grouped := map[string][]rollup.Row{}
	var order []string
	for _, row := range s.recipeRows() {
		name := strings.TrimSpace(row.MenuItemName)
		if name == "" {
			continue
		}
		if _, ok := grouped[name]; !ok {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], row)
	}

	out := make(map[string]string, len(order))
	for _, name := range order {
		parts := make([]string, 0, len(grouped[name]))
		for _, row := range grouped[name] {
			line := cat.ResolveLine(row.IngredientName, row.Quantity, row.Unit)
			parts = append(parts, fmt.Sprintf("%s: %s", row.IngredientName, money.FormatGBP(money.Round2(line.Cost))))
		}
		out[name] = strings.Join(parts, "; ")
	}
	return out
}

func csvField(v string) string {
	if strings.ContainsAny(v, ",\"\n") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}
