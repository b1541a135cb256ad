package catalog

import (
	"net/http"

	"github.com/bigappetite/foodcost-api/internal/common"
)

// Source supplies the current catalog snapshot.
type Source interface {
	Catalog() *Catalog
}

// Handler exposes the ingredient catalog read endpoints.
type Handler struct {
	Catalogs     Source
	DefaultLimit int
	MaxLimit     int
}

// List returns the catalog entries with a pagination envelope. Entries keep
// their sheet order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Catalogs == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "catalog source not configured", nil)
		return
	}
	defaultLimit := h.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	page, perPage := common.ParsePagination(r, defaultLimit)
	if h.MaxLimit > 0 && perPage > h.MaxLimit {
		perPage = h.MaxLimit
	}

	items := h.Catalogs.Catalog().Items()
	p := common.Pagination{Page: page, PerPage: perPage, TotalItems: len(items)}
	lo, hi := p.Slice(len(items))
	common.JSON(w, http.StatusOK, map[string]any{
		"data":       items[lo:hi],
		"pagination": p,
	})
}
