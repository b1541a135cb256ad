package rollup

import (
	"strings"

	"github.com/bigappetite/foodcost-api/internal/catalog"
	"github.com/bigappetite/foodcost-api/internal/money"
)

// MealPrefix marks a grouped row as a meal deal whose lines may reference
// other menu items instead of catalog ingredients.
const MealPrefix = "Meal:"

// Row is one raw recipe row as it appears in the mock sheet: one ingredient
// usage for a menu item, with the selling price typically present only on the
// group's first row.
type Row struct {
	MenuItemName   string  `json:"menuItemName"`
	IngredientName string  `json:"ingredientName"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	SellingPrice   float64 `json:"sellingPrice"`
}

// SummaryRow is one line of the menu summary sheet. Cost and GPPounds are
// rounded to 0.01, GPPercent to 0.1, per the summary sheet contract.
type SummaryRow struct {
	MenuItem  string  `json:"menuItem"`
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	GPPounds  float64 `json:"gpPounds"`
	GPPercent float64 `json:"gpPercent"`
}

type group struct {
	name  string
	rows  []Row
	price float64
}

// Summarize groups raw recipe rows by menu-item name (first-seen order),
// resolves each line against the catalog, and derives the GP summary. The
// group's selling price is the first non-zero price among its rows; rows
// after the first carrying a price are ignored, and a group with no price at
// all sells at 0.
//
// Meal-prefixed groups are computed in a second pass: a line missing from the
// catalog is then matched against the food costs already computed for plain
// items, so a meal can reference "Fries" at its computed cost.
func Summarize(rows []Row, cat *catalog.Catalog) []SummaryRow {
	var order []string
	groups := map[string]*group{}
	for _, row := range rows {
		name := strings.TrimSpace(row.MenuItemName)
		if name == "" {
			continue
		}
		g, ok := groups[name]
		if !ok {
			g = &group{name: name}
			groups[name] = g
			order = append(order, name)
		}
		g.rows = append(g.rows, row)
		if g.price == 0 && row.SellingPrice > 0 {
			g.price = row.SellingPrice
		}
	}

	var itemCosts []itemCost
	summaries := map[string]SummaryRow{}
	// Plain items first so meal deals can reference their costs.
	for _, name := range order {
		if isMeal(name) {
			continue
		}
		g := groups[name]
		cost := groupCost(g, cat, nil)
		itemCosts = append(itemCosts, itemCost{name: strings.ToLower(name), cost: cost})
		summaries[name] = summarize(name, cost, g.price)
	}
	for _, name := range order {
		if !isMeal(name) {
			continue
		}
		g := groups[name]
		cost := groupCost(g, cat, itemCosts)
		summaries[name] = summarize(name, cost, g.price)
	}

	out := make([]SummaryRow, 0, len(order))
	for _, name := range order {
		out = append(out, summaries[name])
	}
	return out
}

func isMeal(name string) bool {
	return strings.HasPrefix(strings.TrimSpace(name), MealPrefix)
}

type itemCost struct {
	name string
	cost float64
}

func groupCost(g *group, cat *catalog.Catalog, itemCosts []itemCost) float64 {
	var total float64
	for _, row := range g.rows {
		line := cat.ResolveLine(row.IngredientName, row.Quantity, row.Unit)
		if line.Found {
			total += line.Cost
			continue
		}
		if itemCosts == nil {
			continue
		}
		if cost, ok := lookupItemCost(row.IngredientName, itemCosts); ok {
			total += row.Quantity * cost
		}
	}
	return total
}

func lookupItemCost(name string, itemCosts []itemCost) (float64, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return 0, false
	}
	for _, it := range itemCosts {
		if it.name == key {
			return it.cost, true
		}
	}
	for _, it := range itemCosts {
		if strings.Contains(it.name, key) || strings.Contains(key, it.name) {
			return it.cost, true
		}
	}
	return 0, false
}

func summarize(name string, cost, price float64) SummaryRow {
	gp := price - cost
	pct := 0.0
	if price > 0 {
		pct = gp / price * 100
	}
	return SummaryRow{
		MenuItem:  name,
		Cost:      money.Round2(cost),
		Price:     price,
		GPPounds:  money.Round2(gp),
		GPPercent: money.Round1(pct),
	}
}
