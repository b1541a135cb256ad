package menu

import "github.com/bigappetite/foodcost-api/internal/catalog"

// Resolver prices one recipe line against an ingredient catalog.
type Resolver interface {
	ResolveLine(name string, quantity float64, unit string) catalog.Line
}

// Line is one recipe entry of a menu item. When UnitCost is positive the line
// is priced directly (manual entry path); otherwise the name is resolved
// through the catalog.
type Line struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unitCost,omitempty" validate:"gte=0"`
}

// Customization is an optional add-on: a flat surcharge plus any extra
// ingredient lines it consumes.
type Customization struct {
	Name                  string  `json:"name"`
	AdditionalCost        float64 `json:"additionalCost" validate:"gte=0"`
	AdditionalIngredients []Line  `json:"additionalIngredients,omitempty" validate:"dive"`
}

// Item is one menu item with its recipe and optional customizations.
type Item struct {
	Name           string          `json:"name" validate:"required"`
	SellingPrice   float64         `json:"sellingPrice" validate:"gte=0"`
	Ingredients    []Line          `json:"ingredients" validate:"dive"`
	Customizations []Customization `json:"customizations,omitempty" validate:"dive"`
}

// Computed carries the derived totals for one menu item. Gross profit may be
// negative; it is never clamped.
type Computed struct {
	Item
	TotalFoodCost         float64 `json:"totalFoodCost"`
	GrossProfit           float64 `json:"grossProfit"`
	GrossProfitPercentage float64 `json:"grossProfitPercentage"`
}

// LineCost pairs a resolved line with its share of the total food cost.
type LineCost struct {
	Line       catalog.Line `json:"line"`
	Percentage float64      `json:"percentage"`
}

// CustomizationCost is the total contribution of one customization.
type CustomizationCost struct {
	Customization Customization `json:"customization"`
	Cost          float64       `json:"cost"`
}

// Breakdown is the detailed calculation result for one menu item.
type Breakdown struct {
	Item           Computed            `json:"menuItem"`
	Lines          []LineCost          `json:"ingredientBreakdown"`
	Customizations []CustomizationCost `json:"customizationBreakdown,omitempty"`
}

// Compute derives total food cost, gross profit and GP% for one item. Inputs
// are never mutated and repeated calls yield identical results.
func Compute(item Item, r Resolver) Computed {
	var total float64
	for _, line := range item.Ingredients {
		total += resolve(line, r).Cost
	}
	for _, cust := range item.Customizations {
		total += customizationCost(cust, r)
	}
	return derive(item, total)
}

// Detailed computes the item totals along with per-line and per-customization
// contributions. The per-line percentage of total cost is 0 when the total
// food cost is 0.
func Detailed(item Item, r Resolver) Breakdown {
	computed := Compute(item, r)
	out := Breakdown{Item: computed}
	for _, line := range item.Ingredients {
		resolved := resolve(line, r)
		pct := 0.0
		if computed.TotalFoodCost > 0 {
			pct = resolved.Cost / computed.TotalFoodCost * 100
		}
		out.Lines = append(out.Lines, LineCost{Line: resolved, Percentage: pct})
	}
	for _, cust := range item.Customizations {
		out.Customizations = append(out.Customizations, CustomizationCost{
			Customization: cust,
			Cost:          customizationCost(cust, r),
		})
	}
	return out
}

func derive(item Item, totalFoodCost float64) Computed {
	gp := item.SellingPrice - totalFoodCost
	pct := 0.0
	if item.SellingPrice > 0 {
		pct = gp / item.SellingPrice * 100
	}
	return Computed{
		Item:                  item,
		TotalFoodCost:         totalFoodCost,
		GrossProfit:           gp,
		GrossProfitPercentage: pct,
	}
}

func customizationCost(cust Customization, r Resolver) float64 {
	cost := cust.AdditionalCost
	for _, line := range cust.AdditionalIngredients {
		cost += resolve(line, r).Cost
	}
	return cost
}

func resolve(line Line, r Resolver) catalog.Line {
	if line.UnitCost > 0 {
		return catalog.Line{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Cost:     line.UnitCost * line.Quantity,
			Found:    true,
		}
	}
	if r == nil {
		return catalog.Line{Name: line.Name, Quantity: line.Quantity, Unit: line.Unit}
	}
	return r.ResolveLine(line.Name, line.Quantity, line.Unit)
}
