package rollup

import (
	"github.com/bigappetite/foodcost-api/internal/menu"
)

// Totals aggregates a set of computed menu items into brand/menu level
// figures.
type Totals struct {
	TotalRevenue                 float64 `json:"totalRevenue"`
	TotalFoodCost                float64 `json:"totalFoodCost"`
	OverallGrossProfit           float64 `json:"overallGrossProfit"`
	OverallGrossProfitPercentage float64 `json:"overallGrossProfitPercentage"`
}

// Sum rolls already-aggregated menu items up into brand totals. Overall GP%
// is 0 when total revenue is 0.
func Sum(items []menu.Computed) Totals {
	var t Totals
	for _, it := range items {
		t.TotalRevenue += it.SellingPrice
		t.TotalFoodCost += it.TotalFoodCost
	}
	t.OverallGrossProfit = t.TotalRevenue - t.TotalFoodCost
	if t.TotalRevenue > 0 {
		t.OverallGrossProfitPercentage = t.OverallGrossProfit / t.TotalRevenue * 100
	}
	return t
}
