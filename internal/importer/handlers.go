package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bigappetite/foodcost-api/internal/catalog"
	"github.com/bigappetite/foodcost-api/internal/common"
	"github.com/bigappetite/foodcost-api/internal/menu"
	"github.com/bigappetite/foodcost-api/internal/obs"
	"github.com/bigappetite/foodcost-api/internal/rollup"
	"github.com/bigappetite/foodcost-api/internal/sheets"
)

// maxUploadBytes bounds a single CSV upload.
const maxUploadBytes = 5 << 20

// Invalidator drops derived summary state after the sheet changes.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Handler accepts tabular uploads and stores them in the spreadsheet store.
type Handler struct {
	Store       *sheets.Store
	Summaries   Invalidator
	DefaultUnit string
	Log         zerolog.Logger
}

// Upload ingests a CSV payload, multipart or raw. The kind is detected from
// the header row; a validation failure commits nothing.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	raw, err := readPayload(r)
	if err != nil {
		countImport(KindUnknown, "error")
		common.WriteError(w, err)
		return
	}

	rows := ParseTable(raw)
	if len(rows) == 0 {
		countImport(KindUnknown, "error")
		common.WriteError(w, common.ValidationError("upload is empty"))
		return
	}
	kind := DetectKind(rows[0])

	records, err := h.apply(kind, raw)
	if err != nil {
		countImport(kind, "error")
		common.WriteError(w, err)
		return
	}
	countImport(kind, "ok")
	h.Log.Info().Str("kind", string(kind)).Int("records", records).Msg("import stored")

	if h.Summaries != nil {
		h.Summaries.Invalidate(r.Context())
	}
	common.JSONData(w, http.StatusOK, map[string]any{
		"kind":          kind,
		"records":       records,
		"spreadsheetId": h.Store.ID(),
	})
}

func (h *Handler) apply(kind Kind, raw string) (int, error) {
	switch kind {
	case KindIngredients:
		ings, err := Ingredients(raw)
		if err != nil {
			return 0, err
		}
		h.writeIngredients(ings)
		return len(ings), nil
	case KindCostings:
		ings, err := Costings(raw)
		if err != nil {
			return 0, err
		}
		h.writeIngredients(ings)
		return len(ings), nil
	case KindRecipes:
		rows, err := RecipeRows(raw)
		if err != nil {
			return 0, err
		}
		h.writeRecipeRows(rows)
		return len(rows), nil
	case KindMenuItems:
		items, err := MenuItems(raw, h.DefaultUnit)
		if err != nil {
			return 0, err
		}
		h.writeRecipeRows(itemsToRows(items))
		return len(items), nil
	case KindMenuPrices:
		prices, err := MenuPrices(raw)
		if err != nil {
			return 0, err
		}
		applied := 0
		for _, p := range prices {
			if err := h.Store.UpdateSellingPrice(p.MenuItem, p.SellingPrice); err != nil {
				h.Log.Warn().Str("menu_item", p.MenuItem).Msg("price update skipped, item not found")
				continue
			}
			applied++
		}
		return applied, nil
	}
	return 0, common.ValidationError("could not detect the upload kind from its header row")
}

func (h *Handler) writeIngredients(ings []catalog.Ingredient) {
	tab := make([][]string, 0, len(ings)+1)
	tab = append(tab, []string{"Ingredient Name", "Unit", "Unit Cost (£)", "Pack Size", "Cost per Unit (£)", "Supplier", "Category"})
	for _, ing := range ings {
		tab = append(tab, []string{
			ing.Name,
			ing.Unit,
			fmt.Sprintf("%.2f", ing.UnitCost),
			trimFloat(ing.PackSize),
			trimFloat(ing.CostPerUnit),
			ing.Supplier,
			ing.Category,
		})
	}
	h.Store.WriteTab(sheets.TabIngredients, tab)
}

func (h *Handler) writeRecipeRows(rows []rollup.Row) {
	tab := make([][]string, 0, len(rows)+1)
	tab = append(tab, []string{"Menu Item Name", "Ingredient Name", "Qty Used", "Unit", "Auto Cost (£)", "Selling Price (£)"})
	for _, row := range rows {
		price := ""
		if row.SellingPrice > 0 {
			price = fmt.Sprintf("%.2f", row.SellingPrice)
		}
		tab = append(tab, []string{
			row.MenuItemName,
			row.IngredientName,
			trimFloat(row.Quantity),
			row.Unit,
			"",
			price,
		})
	}
	h.Store.WriteTab(sheets.TabMenuItems, tab)
}

// itemsToRows flattens structured menu items into per-ingredient recipe rows,
// carrying the selling price on the group's first row only.
func itemsToRows(items []menu.Item) []rollup.Row {
	var rows []rollup.Row
	for _, item := range items {
		if len(item.Ingredients) == 0 {
			rows = append(rows, rollup.Row{
				MenuItemName: item.Name,
				SellingPrice: item.SellingPrice,
			})
			continue
		}
		for i, line := range item.Ingredients {
			row := rollup.Row{
				MenuItemName:   item.Name,
				IngredientName: line.Name,
				Quantity:       line.Quantity,
				Unit:           line.Unit,
			}
			if i == 0 {
				row.SellingPrice = item.SellingPrice
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func readPayload(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", common.ValidationError("invalid multipart payload")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", common.ValidationError("multipart upload requires a \"file\" field")
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return "", common.ValidationError("could not read the uploaded file")
		}
		return string(data), nil
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return "", common.ValidationError("could not read the request body")
	}
	return string(data), nil
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func countImport(kind Kind, result string) {
	if obs.ImportsTotal != nil {
		obs.ImportsTotal.WithLabelValues(string(kind), result).Inc()
	}
}
