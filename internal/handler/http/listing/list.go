package listing

import (
	"log/slog"
	"net/http"
	"time"

	"tourcatalog/internal/common/pagination"
	"tourcatalog/internal/handler/http/requestid"
	"tourcatalog/internal/handler/http/respond"
	"tourcatalog/internal/observability/logging"
	uc "tourcatalog/internal/usecase/listing"
)

// maxAutoPages caps how many follow-up catalog pages a single request may
// pull while filling a sparse result. Heavy filtering over a huge catalog
// could otherwise walk the whole upstream dataset in one HTTP request.
const maxAutoPages = 5

// serverEagerDelay effectively disables the engine's timer-driven advance;
// the handler fills sparse results synchronously within the request instead.
const serverEagerDelay = time.Hour

type ListHandler struct {
	Catalog   uc.CatalogSource
	Store     uc.AnnotationStore
	Detail    uc.DetailSource
	EngineCfg uc.Config
	Logger    *slog.Logger

	// RequireKeyword makes a blank keyword a validation error. Set on the
	// search route, where an empty query has no meaningful result.
	RequireKeyword bool
}

// ServeHTTP aggregates one catalog page (plus synchronous fill-up pages when
// filtering leaves the result sparse) into an annotated listing response.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	q, page, err := parseQuery(r)
	if err == nil && h.RequireKeyword && q.Keyword == "" {
		err = errMissingKeyword
	}
	if err != nil {
		logger.Warn("Invalid listing parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := h.EngineCfg
	cfg.EagerDelay = serverEagerDelay
	minVisible := cfg.EagerMinVisible
	if minVisible <= 0 {
		minVisible = 10
	}

	eng := uc.NewEngine(h.Catalog, h.Store, h.Detail, cfg, logger)
	defer eng.Close()

	snap, err := eng.LoadPage(ctx, q, page, uc.ModeReplace)
	if err != nil {
		logger.Error("Failed to load listing page",
			"error", err.Error(),
			"page", page,
			"request_id", reqID)
		pagination.RecordError("upstream")
		respond.SafeError(w, http.StatusBadGateway, err)
		return
	}

	// Synchronous counterpart of the engine's eager advance: keep pulling
	// pages until enough items are visible or the raw stream ends.
	for i := 0; i < maxAutoPages && snap.MoreAvailable && len(snap.Items) < minVisible; i++ {
		next, err := eng.RequestNextPage(ctx)
		if err != nil {
			logger.Warn("Fill-up page load failed",
				"error", err.Error(),
				"after_page", snap.LastPage,
				"request_id", reqID)
			break
		}
		snap = next
	}

	items := make([]ItemDTO, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, toItemDTO(it))
	}

	response := ResponseDTO{
		Items:         items,
		Page:          snap.LastPage,
		MoreAvailable: snap.MoreAvailable,
		RawFetched:    snap.RawFetched,
		TotalCount:    snap.TotalCount,
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(snap.TotalCount)

	logger.Info("Listing response",
		"page", page,
		"last_page", snap.LastPage,
		"returned_count", len(items),
		"raw_fetched", snap.RawFetched,
		"more_available", snap.MoreAvailable,
		"duration_ms", duration.Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
