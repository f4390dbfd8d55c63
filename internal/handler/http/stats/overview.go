// Package stats exposes the pet-policy coverage dashboard endpoint.
package stats

import (
	"net/http"

	"tourcatalog/internal/handler/http/respond"
	statsUC "tourcatalog/internal/usecase/stats"
)

type OverviewHandler struct{ Svc *statsUC.Service }

// ServeHTTP returns the coverage summary: stored policy totals, the allowed
// share, bookmark volume, and breakdowns by category and area.
func (h OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Svc.Overview(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, overview)
}

// Register wires the stats endpoint into the given mux.
func Register(mux *http.ServeMux, svc *statsUC.Service) {
	mux.Handle("GET /stats/overview", OverviewHandler{svc})
}
