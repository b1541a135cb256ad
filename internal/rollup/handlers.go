package rollup

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/bigappetite/foodcost-api/internal/common"
	"github.com/bigappetite/foodcost-api/internal/menu"
	"github.com/bigappetite/foodcost-api/internal/obs"
)

// Handler exposes the brand rollup endpoint.
type Handler struct {
	Catalogs menu.CatalogSource
	Validate *validator.Validate
}

// Rollup computes per-item costs for a list of menu items and rolls them up
// into brand totals.
func (h *Handler) Rollup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name  string      `json:"name"`
		Items []menu.Item `json:"menuItems" validate:"required,dive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "invalid rollup payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "rollup payload failed validation", err.Error())
			return
		}
	}
	var resolver menu.Resolver
	if h.Catalogs != nil {
		resolver = h.Catalogs.Catalog()
	}
	computed := make([]menu.Computed, 0, len(payload.Items))
	for _, item := range payload.Items {
		computed = append(computed, menu.Compute(item, resolver))
	}
	if obs.CalculationsTotal != nil {
		obs.CalculationsTotal.WithLabelValues("rollup").Inc()
	}
	common.JSONData(w, http.StatusOK, map[string]any{
		"name":      payload.Name,
		"menuItems": computed,
		"totals":    Sum(computed),
	})
}
