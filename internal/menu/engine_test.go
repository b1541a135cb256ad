package menu

import (
	"testing"

	"github.com/bigappetite/foodcost-api/internal/catalog"
)

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}

func TestComputeGrossProfit(t *testing.T) {
	item := Item{
		Name:         "Burger",
		SellingPrice: 12.00,
		Ingredients: []Line{
			{Name: "Patty", Quantity: 1, UnitCost: 2.45},
			{Name: "Bun", Quantity: 1, UnitCost: 1.00},
		},
	}
	got := Compute(item, nil)
	if !almostEqual(got.TotalFoodCost, 3.45) {
		t.Fatalf("total food cost = %v, want 3.45", got.TotalFoodCost)
	}
	if !almostEqual(got.GrossProfit, 8.55) {
		t.Fatalf("gross profit = %v, want 8.55", got.GrossProfit)
	}
	if !almostEqual(got.GrossProfitPercentage, 71.25) {
		t.Fatalf("GP%% = %v, want 71.25", got.GrossProfitPercentage)
	}
}

func TestComputeZeroSellingPrice(t *testing.T) {
	item := Item{Name: "Tasting", Ingredients: []Line{{Name: "Patty", Quantity: 1, UnitCost: 2}}}
	got := Compute(item, nil)
	if got.GrossProfitPercentage != 0 {
		t.Fatalf("GP%% with zero selling price must be 0, got %v", got.GrossProfitPercentage)
	}
	if !almostEqual(got.GrossProfit, -2) {
		t.Fatalf("gross profit must stay negative, got %v", got.GrossProfit)
	}
}

func TestComputeWithCatalogAndCustomizations(t *testing.T) {
	cat := catalog.New(
		catalog.Ingredient{Name: "Flour", Unit: "kg", UnitCost: 2.50, PackSize: 5},
		catalog.Ingredient{Name: "Cheese Slice", Unit: "slice", CostPerUnit: 0.15, UnitCost: 16.39, PackSize: 112},
	)
	item := Item{
		Name:         "Pizza",
		SellingPrice: 10,
		Ingredients:  []Line{{Name: "Flour", Quantity: 0.3, Unit: "kg"}},
		Customizations: []Customization{{
			Name:                  "Extra cheese",
			AdditionalCost:        0.50,
			AdditionalIngredients: []Line{{Name: "Cheese Slice", Quantity: 2, Unit: "slice"}},
		}},
	}
	got := Compute(item, cat)
	// 0.15 flour + 0.50 surcharge + 0.30 cheese
	if !almostEqual(got.TotalFoodCost, 0.95) {
		t.Fatalf("total food cost = %v, want 0.95", got.TotalFoodCost)
	}
}

func TestComputeIdempotent(t *testing.T) {
	cat := catalog.New(catalog.Ingredient{Name: "Flour", Unit: "kg", UnitCost: 2.50, PackSize: 5})
	item := Item{Name: "Bread", SellingPrice: 4, Ingredients: []Line{{Name: "Flour", Quantity: 0.3, Unit: "kg"}}}
	first := Compute(item, cat)
	second := Compute(item, cat)
	if first.TotalFoodCost != second.TotalFoodCost || first.GrossProfit != second.GrossProfit {
		t.Fatalf("repeated aggregation diverged: %+v vs %+v", first, second)
	}
	if len(item.Ingredients) != 1 || item.Ingredients[0].Quantity != 0.3 {
		t.Fatal("input item was mutated")
	}
}

func TestDetailedBreakdown(t *testing.T) {
	item := Item{
		Name:         "Fries",
		SellingPrice: 3,
		Ingredients: []Line{
			{Name: "Potato", Quantity: 1, UnitCost: 1.50},
			{Name: "Oil", Quantity: 1, UnitCost: 0.50},
		},
	}
	bd := Detailed(item, nil)
	if len(bd.Lines) != 2 {
		t.Fatalf("expected 2 line costs, got %d", len(bd.Lines))
	}
	if !almostEqual(bd.Lines[0].Percentage, 75) {
		t.Fatalf("expected 75%% share, got %v", bd.Lines[0].Percentage)
	}
}

func TestDetailedZeroTotalCost(t *testing.T) {
	item := Item{Name: "Water", SellingPrice: 1, Ingredients: []Line{{Name: "Tap Water", Quantity: 1}}}
	bd := Detailed(item, nil)
	if bd.Lines[0].Percentage != 0 {
		t.Fatalf("line percentage must be 0 when total cost is 0, got %v", bd.Lines[0].Percentage)
	}
}
