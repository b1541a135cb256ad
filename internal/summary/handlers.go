package summary

import (
	"net/http"

	"github.com/bigappetite/foodcost-api/internal/common"
)

// Handler exposes the summary and spreadsheet session endpoints.
type Handler struct {
	Svc *Service
}

// Summary returns the menu GP summary rows.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "summary service not configured", nil)
		return
	}
	rows, err := h.Svc.Summary(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data":          rows,
		"spreadsheetId": h.Svc.Store.ID(),
		"publicUrl":     h.Svc.Store.URL(),
	})
}

// Initialize (re)seeds the mock spreadsheet and recalculates the summary.
func (h *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "summary service not configured", nil)
		return
	}
	id := h.Svc.Store.Initialize()
	h.Svc.Invalidate(r.Context())
	if _, err := h.Svc.Recalculate(r.Context()); err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"spreadsheetId": id,
		"publicUrl":     h.Svc.Store.URL(),
	})
}

// Export streams the summary as CSV.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "summary service not configured", nil)
		return
	}
	csv, err := h.Svc.ExportCSV(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="menu-summary.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

// Query answers free-text questions over the loaded data.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "summary service not configured", nil)
		return
	}
	result, err := h.Svc.Query(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, result)
}
