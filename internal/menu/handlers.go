package menu

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/bigappetite/foodcost-api/internal/catalog"
	"github.com/bigappetite/foodcost-api/internal/common"
	"github.com/bigappetite/foodcost-api/internal/obs"
)

// CatalogSource supplies the current ingredient catalog.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

// Handler exposes the menu item calculation endpoints.
type Handler struct {
	Catalogs CatalogSource
	Validate *validator.Validate
}

// Calculate computes the detailed cost breakdown for one menu item.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "invalid menu item payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(item); err != nil {
			common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "menu item failed validation", err.Error())
			return
		}
	}
	breakdown := Detailed(item, h.resolver())
	countCalculation("item")
	countUnmatched(breakdown.Lines)
	common.JSONData(w, http.StatusOK, breakdown)
}

func (h *Handler) resolver() Resolver {
	if h.Catalogs == nil {
		return catalog.New()
	}
	return h.Catalogs.Catalog()
}

func countCalculation(path string) {
	if obs.CalculationsTotal != nil {
		obs.CalculationsTotal.WithLabelValues(path).Inc()
	}
}

func countUnmatched(lines []LineCost) {
	if obs.UnmatchedLinesTotal == nil {
		return
	}
	for _, lc := range lines {
		if !lc.Line.Found {
			obs.UnmatchedLinesTotal.Inc()
		}
	}
}
