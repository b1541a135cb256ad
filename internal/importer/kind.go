package importer

import (
	"regexp"
	"strings"
)

// Kind classifies an uploaded table by its header row.
type Kind string

const (
	KindCostings    Kind = "costings"
	KindIngredients Kind = "ingredients"
	KindRecipes     Kind = "recipes"
	KindMenuItems   Kind = "menu_items"
	KindMenuPrices  Kind = "menu_prices"
	KindUnknown     Kind = "unknown"
)

// interleavedPair matches the numbered ingredient columns of an interleaved
// menu-item sheet ("Ingredient 1", "Ingredient 2", ...) after normalisation.
var interleavedPair = regexp.MustCompile(`^ingredient\d+$`)

// DetectKind inspects normalised headers and decides which parser applies.
// Costings sheets carry an ingredient column plus a pack size; structured
// ingredient exports carry a purchase price; recipe rows pair a menu item
// with per-ingredient quantities; a selling price next to numbered
// ingredient columns marks an interleaved menu-item sheet. Any other sheet
// with a selling price is a plain price list, which keeps summary exports
// (whose breakdown column is named "Ingredients") re-importable as price
// updates rather than recipe overwrites.
func DetectKind(headers []string) Kind {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = normalizeHeader(h)
	}
	has := func(name string) bool {
		for _, h := range norm {
			if h == name {
				return true
			}
		}
		return false
	}
	contains := func(substr string) bool {
		for _, h := range norm {
			if strings.Contains(h, substr) {
				return true
			}
		}
		return false
	}

	switch {
	case has("ingredient") && has("packsize"):
		return KindCostings
	case contains("purchaseprice"):
		return KindIngredients
	case contains("menuitem") && contains("ingredient") && (contains("qty") || contains("quantity")):
		return KindRecipes
	case has("ingredients") && (has("qty") || has("quantity")):
		return KindRecipes
	case contains("sellingprice") && paired(norm):
		return KindMenuItems
	case contains("sellingprice"):
		return KindMenuPrices
	case contains("menuitem") && has("ingredients"):
		return KindRecipes
	case contains("menuitem") && has("brand") && has("category"):
		return KindRecipes
	}
	return KindUnknown
}

// paired reports whether any normalised header is a numbered ingredient
// column.
func paired(headers []string) bool {
	for _, h := range headers {
		if interleavedPair.MatchString(h) {
			return true
		}
	}
	return false
}
