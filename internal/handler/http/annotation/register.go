package annotation

import (
	"net/http"

	"tourcatalog/internal/common/pagination"
	annUC "tourcatalog/internal/usecase/annotation"
)

// Register wires the pet-policy endpoints into the given mux.
func Register(mux *http.ServeMux, svc *annUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET /policies", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("POST /policies", SubmitHandler{svc})
	mux.Handle("GET /policies/{contentId}", GetHandler{svc})
	mux.Handle("DELETE /policies/{contentId}", DeleteHandler{svc})
}
