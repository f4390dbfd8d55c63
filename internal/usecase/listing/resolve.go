package listing

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/observability/metrics"
	"tourcatalog/internal/repository"
	"tourcatalog/internal/utils/identifier"
)

// resolutionStrategy is decided once per query scope and reused for every
// page loaded under that query.
type resolutionStrategy int

const (
	resolutionUndecided resolutionStrategy = iota
	// resolutionStore annotates items from a bulk store lookup.
	resolutionStore
	// resolutionFallback annotates items from per-item detail calls because
	// the store has no coverage for the scope.
	resolutionFallback
)

func (s resolutionStrategy) String() string {
	switch s {
	case resolutionStore:
		return "store"
	case resolutionFallback:
		return "detail_fallback"
	default:
		return "undecided"
	}
}

// resolver attaches pet policies to raw catalog items.
type resolver struct {
	store       AnnotationStore
	detail      DetailSource
	parallelism int
	logger      *slog.Logger
}

// decide picks the strategy for a query scope. A store error is treated the
// same as an empty result: the fallback path still produces a usable listing.
func (r *resolver) decide(ctx context.Context, q Query) (resolutionStrategy, map[string]*entity.PetPolicy) {
	if r.store == nil {
		return resolutionFallback, nil
	}
	filter := repository.PetPolicyFilter{
		AreaCode:   q.AreaCode,
		Categories: q.sortedCategories(),
	}
	policies, err := r.store.List(ctx, filter)
	if err != nil {
		r.logger.Warn("annotation store lookup failed, using detail fallback",
			"area_code", q.AreaCode, "error", err)
		return resolutionFallback, nil
	}
	if len(policies) == 0 {
		return resolutionFallback, nil
	}
	byID := make(map[string]*entity.PetPolicy, len(policies))
	for _, p := range policies {
		byID[identifier.Normalize(p.ContentID)] = p
	}
	return resolutionStore, byID
}

// annotate resolves policies for one page of raw items using the given
// strategy. The returned slice is index-aligned with items; entries with no
// positive, resolvable annotation are nil.
func (r *resolver) annotate(ctx context.Context, strategy resolutionStrategy, byID map[string]*entity.PetPolicy, items []*entity.Place) []*entity.PetPolicy {
	metrics.RecordAnnotationResolution(strategy.String())
	if strategy == resolutionStore {
		out := make([]*entity.PetPolicy, len(items))
		for i, place := range items {
			out[i] = byID[identifier.Normalize(place.ContentID)]
		}
		return out
	}
	return r.fallback(ctx, items)
}

// fallback issues one detail request per item with bounded parallelism. The
// batch is all-settled: an individual failure means "no annotation" for that
// item and never fails the page.
func (r *resolver) fallback(ctx context.Context, items []*entity.Place) []*entity.PetPolicy {
	start := time.Now()
	out := make([]*entity.PetPolicy, len(items))
	if r.detail == nil {
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	results := make([]string, len(items)) // outcome per index for counting
	for i, place := range items {
		g.Go(func() error {
			info, err := r.detail.GetDetail(gctx, place.ContentID, place.Category)
			if err != nil {
				r.logger.Debug("detail fallback request failed",
					"content_id", place.ContentID, "error", err)
				results[i] = "error"
				return nil
			}
			if positiveAttribute(info.RawPetAttribute) {
				out[i] = &entity.PetPolicy{
					ContentID: identifier.Normalize(place.ContentID),
					Allowed:   true,
					Category:  place.Category,
					AreaCode:  place.AreaCode,
					Notes:     info.RawPetAttribute,
				}
				results[i] = "positive"
				return nil
			}
			results[i] = "negative"
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	for _, res := range results {
		if res == "" {
			res = "error"
		}
		metrics.RecordDetailFallback(res)
	}
	metrics.RecordDetailFallbackBatch(time.Since(start))
	return out
}
