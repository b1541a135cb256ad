package importer

import (
	"regexp"

	"github.com/bigappetite/foodcost-api/internal/catalog"
	"github.com/bigappetite/foodcost-api/internal/common"
	"github.com/bigappetite/foodcost-api/internal/menu"
	"github.com/bigappetite/foodcost-api/internal/money"
	"github.com/bigappetite/foodcost-api/internal/rollup"
)

// DefaultUnit is assumed for recipe lines that do not name one.
const DefaultUnit = "kg"

// unitSuffix matches a trailing parenthesised unit on an ingredient name,
// e.g. "Flour (g)".
var unitSuffix = regexp.MustCompile(`\s*\(([^)]*)\)\s*$`)

// PriceRow is one entry of a menu price list.
type PriceRow struct {
	MenuItem     string  `json:"menuItem"`
	SellingPrice float64 `json:"sellingPrice"`
}

// Ingredients parses a structured ingredient export. Required columns: name,
// purchase price, quantity, unit. Rows with an empty name, a non-positive
// price or a non-positive quantity are dropped. A validation failure yields
// zero records, never a partial list.
func Ingredients(raw string) ([]catalog.Ingredient, error) {
	rows := ParseTable(raw)
	if len(rows) < 2 {
		return nil, common.ValidationError("ingredient import needs a header row and at least one data row")
	}
	headers := rows[0]
	nameIdx := findHeader(headers, "name", "ingredient")
	priceIdx := findHeader(headers, "purchase price")
	qtyIdx := findHeader(headers, "quantity", "qty")
	unitIdx := findHeader(headers, "unit")
	if nameIdx < 0 || priceIdx < 0 || qtyIdx < 0 || unitIdx < 0 {
		return nil, common.ValidationError("ingredient import requires name, purchase price, quantity and unit columns")
	}

	out := make([]catalog.Ingredient, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := field(row, nameIdx)
		price := money.ParseAmount(field(row, priceIdx))
		qty := money.ParseAmount(field(row, qtyIdx))
		if name == "" || price <= 0 || qty <= 0 {
			continue
		}
		out = append(out, catalog.Ingredient{
			Name:     name,
			Unit:     field(row, unitIdx),
			UnitCost: price,
			PackSize: qty,
		}.Normalized())
	}
	return out, nil
}

// Costings parses a supplier costings sheet: ingredient, pack size and a
// price column. Unit cost per pack unit is price divided by pack size, with
// a zero pack size yielding 0.
func Costings(raw string) ([]catalog.Ingredient, error) {
	rows := ParseTable(raw)
	if len(rows) < 2 {
		return nil, common.ValidationError("costings import needs a header row and at least one data row")
	}
	headers := rows[0]
	nameIdx := findHeader(headers, "ingredient")
	packIdx := findHeader(headers, "pack size", "packsize")
	priceIdx := findHeaderContains(headers, "price")
	if nameIdx < 0 || packIdx < 0 || priceIdx < 0 {
		return nil, common.ValidationError("costings import requires ingredient, pack size and price columns")
	}
	unitIdx := findHeader(headers, "unit")

	out := make([]catalog.Ingredient, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := field(row, nameIdx)
		if name == "" {
			continue
		}
		price := money.ParseAmount(field(row, priceIdx))
		pack := money.ParseAmount(field(row, packIdx))
		out = append(out, catalog.Ingredient{
			Name:        name,
			Unit:        field(row, unitIdx),
			UnitCost:    price,
			PackSize:    pack,
			CostPerUnit: catalog.DeriveCostPerUnit(price, pack),
		})
	}
	return out, nil
}

// MenuItems parses an interleaved menu-item sheet. Required columns: name and
// selling price; ingredient columns follow as (name, quantity) pairs starting
// at column 2. A trailing parenthesised unit on the ingredient name is
// extracted; defaultUnit applies when absent. Pairs with an empty name or a
// non-positive quantity are skipped.
func MenuItems(raw, defaultUnit string) ([]menu.Item, error) {
	rows := ParseTable(raw)
	if len(rows) < 2 {
		return nil, common.ValidationError("menu item import needs a header row and at least one data row")
	}
	headers := rows[0]
	nameIdx := findHeader(headers, "name", "menu item", "menu item name")
	priceIdx := findHeaderContains(headers, "selling price")
	if nameIdx < 0 || priceIdx < 0 {
		return nil, common.ValidationError("menu item import requires name and selling price columns")
	}
	if defaultUnit == "" {
		defaultUnit = DefaultUnit
	}

	out := make([]menu.Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := field(row, nameIdx)
		if name == "" {
			continue
		}
		item := menu.Item{
			Name:         name,
			SellingPrice: money.ParseAmount(field(row, priceIdx)),
		}
		for i := 2; i+1 < len(row); i += 2 {
			ingName, unit := splitUnitSuffix(field(row, i))
			qty := money.ParseAmount(field(row, i+1))
			if ingName == "" || qty <= 0 {
				continue
			}
			if unit == "" {
				unit = defaultUnit
			}
			item.Ingredients = append(item.Ingredients, menu.Line{
				Name:     ingName,
				Quantity: qty,
				Unit:     unit,
			})
		}
		out = append(out, item)
	}
	return out, nil
}

// RecipeRows parses flat per-ingredient recipe rows for the grouped rollup
// path: menu item name, ingredient name, quantity used, unit and an optional
// selling price column.
func RecipeRows(raw string) ([]rollup.Row, error) {
	rows := ParseTable(raw)
	if len(rows) < 2 {
		return nil, common.ValidationError("recipe import needs a header row and at least one data row")
	}
	headers := rows[0]
	itemIdx := findHeader(headers, "menu item", "menu item name")
	ingIdx := findHeader(headers, "ingredient", "ingredient name", "ingredients")
	qtyIdx := findHeader(headers, "qty", "quantity", "qty used")
	if itemIdx < 0 || ingIdx < 0 || qtyIdx < 0 {
		return nil, common.ValidationError("recipe import requires menu item, ingredient and quantity columns")
	}
	unitIdx := findHeader(headers, "unit")
	priceIdx := findHeaderContains(headers, "selling price")

	out := make([]rollup.Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		itemName := field(row, itemIdx)
		ingName := field(row, ingIdx)
		if itemName == "" || ingName == "" {
			continue
		}
		out = append(out, rollup.Row{
			MenuItemName:   itemName,
			IngredientName: ingName,
			Quantity:       money.ParseAmount(field(row, qtyIdx)),
			Unit:           field(row, unitIdx),
			SellingPrice:   money.ParseAmount(field(row, priceIdx)),
		})
	}
	return out, nil
}

// MenuPrices parses a plain price list: menu item name plus selling price.
func MenuPrices(raw string) ([]PriceRow, error) {
	rows := ParseTable(raw)
	if len(rows) < 2 {
		return nil, common.ValidationError("menu price import needs a header row and at least one data row")
	}
	headers := rows[0]
	nameIdx := findHeader(headers, "menu item", "menu item name", "name")
	priceIdx := findHeaderContains(headers, "selling price")
	if nameIdx < 0 || priceIdx < 0 {
		return nil, common.ValidationError("menu price import requires menu item and selling price columns")
	}

	out := make([]PriceRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := field(row, nameIdx)
		if name == "" {
			continue
		}
		out = append(out, PriceRow{
			MenuItem:     name,
			SellingPrice: money.ParseAmount(field(row, priceIdx)),
		})
	}
	return out, nil
}

func splitUnitSuffix(name string) (string, string) {
	m := unitSuffix.FindStringSubmatchIndex(name)
	if m == nil {
		return name, ""
	}
	return name[:m[0]], name[m[2]:m[3]]
}
