package listing

import (
	"log/slog"
	"net/http"

	uc "tourcatalog/internal/usecase/listing"
)

// Register wires the listing endpoint into the given mux. The aggregation
// engine is built per request; catalog, store, and detail are the shared
// long-lived dependencies behind it.
func Register(mux *http.ServeMux, catalog uc.CatalogSource, store uc.AnnotationStore, detail uc.DetailSource, cfg uc.Config, logger *slog.Logger) {
	mux.Handle("GET /places", ListHandler{
		Catalog:   catalog,
		Store:     store,
		Detail:    detail,
		EngineCfg: cfg,
		Logger:    logger,
	})
	mux.Handle("GET /places/search", ListHandler{
		Catalog:        catalog,
		Store:          store,
		Detail:         detail,
		EngineCfg:      cfg,
		Logger:         logger,
		RequireKeyword: true,
	})
}
