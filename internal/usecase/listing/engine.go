package listing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tourcatalog/internal/common/pagination"
	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/observability/metrics"
	"tourcatalog/internal/utils/identifier"
)

// Config controls aggregation behavior. Zero values take defaults.
type Config struct {
	// PageSize is the raw page size requested from the catalog.
	PageSize int

	// EagerDelay is how long the engine waits after a page settles before
	// auto-advancing when too few items are visible.
	EagerDelay time.Duration

	// EagerMinVisible is the display-list length below which the engine
	// keeps auto-advancing while more raw pages remain.
	EagerMinVisible int

	// FallbackParallelism bounds concurrent detail fallback requests.
	FallbackParallelism int

	// ExtraVocabulary adds deployment-specific pet keywords on top of the
	// built-in vocabulary.
	ExtraVocabulary []string
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = 20
	}
	if c.EagerDelay <= 0 {
		c.EagerDelay = 300 * time.Millisecond
	}
	if c.EagerMinVisible <= 0 {
		c.EagerMinVisible = 10
	}
	if c.FallbackParallelism <= 0 {
		c.FallbackParallelism = 8
	}
	return c
}

// pageState is all accumulated state for the active query. It is replaced
// wholesale whenever the query changes.
type pageState struct {
	query        Query
	filterActive bool

	strategy resolutionStrategy
	policies map[string]*entity.PetPolicy

	// accumulated holds every deduplicated item with its annotation,
	// before filtering. display is derived from it.
	accumulated []AggregatedItem
	seen        map[string]struct{}
	display     []AggregatedItem

	rawFetched    int64
	totalCount    int64
	lastPage      int
	moreAvailable bool
	lastErr       error
}

// Engine aggregates catalog pages with pet-policy annotations into a single
// incrementally growing display list. All methods are safe for concurrent
// use; at most one page request is in flight at a time.
type Engine struct {
	catalog  CatalogSource
	resolver *resolver
	vocab    Vocabulary
	sorter   *sorter
	cfg      Config
	logger   *slog.Logger

	mu         sync.Mutex
	state      *pageState
	generation uint64
	inFlight   bool
	eagerTimer *time.Timer
	subs       map[int]func(Snapshot)
	nextSub    int
}

// NewEngine builds an engine. store and detail may each be nil; with a nil
// store every query resolves through the detail fallback, and with a nil
// detail source fallback resolution yields no annotations.
func NewEngine(catalog CatalogSource, store AnnotationStore, detail DetailSource, cfg Config, logger *slog.Logger) *Engine {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		catalog: catalog,
		resolver: &resolver{
			store:       store,
			detail:      detail,
			parallelism: cfg.FallbackParallelism,
			logger:      logger,
		},
		vocab:  NewVocabulary(cfg.ExtraVocabulary...),
		sorter: newSorter(),
		cfg:    cfg,
		logger: logger,
		subs:   make(map[int]func(Snapshot)),
	}
}

// Configure sets the active query. A query equal to the current one is a
// no-op; otherwise all accumulated state is discarded, pagination restarts
// at page 1, and any in-flight result becomes stale.
func (e *Engine) Configure(q Query) {
	e.mu.Lock()
	if e.state != nil && e.state.query.Equal(q) {
		e.mu.Unlock()
		return
	}
	e.resetLocked(q)
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(snap)
}

// resetLocked replaces state for a new query and invalidates in-flight work.
func (e *Engine) resetLocked(q Query) {
	e.generation++
	e.inFlight = false
	if e.eagerTimer != nil {
		e.eagerTimer.Stop()
		e.eagerTimer = nil
	}
	active := q.Pet.Mode == PetFilterRequired ||
		(q.Pet.Mode == PetFilterDefault && e.vocab.Matches(q.Keyword))
	e.state = &pageState{
		query:        q,
		filterActive: active,
		seen:         make(map[string]struct{}),
	}
}

// LoadPage fetches one catalog page and merges it into engine state. A query
// differing from the active one, or ModeReplace, resets state first. Returns
// ErrLoadInProgress when an append is rejected by the in-flight guard, and
// ErrStaleResult when the result arrived after the query changed.
func (e *Engine) LoadPage(ctx context.Context, q Query, page int, mode LoadMode) (Snapshot, error) {
	return e.load(ctx, q, page, mode, 0, false)
}

// RequestNextPage is the proximity trigger: it loads the page after the last
// merged one, if more raw pages remain and nothing is in flight.
func (e *Engine) RequestNextPage(ctx context.Context) (Snapshot, error) {
	e.mu.Lock()
	if e.state == nil {
		e.mu.Unlock()
		return Snapshot{}, ErrNoActiveQuery
	}
	if e.inFlight {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrLoadInProgress
	}
	if !e.state.moreAvailable {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, nil
	}
	q := e.state.query
	page := e.state.lastPage + 1
	gen := e.generation
	e.mu.Unlock()
	return e.load(ctx, q, page, ModeAppend, gen, true)
}

// load is the single page-load path. When wantGen is set the load only
// proceeds if the engine is still on that generation, which lets triggers
// hand off work without racing a concurrent query change.
func (e *Engine) load(ctx context.Context, q Query, page int, mode LoadMode, wantGen uint64, haveGen bool) (Snapshot, error) {
	e.mu.Lock()
	if haveGen && wantGen != e.generation {
		e.mu.Unlock()
		return Snapshot{}, ErrStaleResult
	}
	if mode == ModeReplace || e.state == nil || !e.state.query.Equal(q) {
		e.resetLocked(q)
	}
	if e.inFlight {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrLoadInProgress
	}
	e.inFlight = true
	gen := e.generation
	strategy := e.state.strategy
	policies := e.state.policies
	loading := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(loading)

	op := "list"
	fetch := e.catalog.List
	if q.hasKeyword() {
		op = "search"
		fetch = e.catalog.Search
	}
	start := time.Now()
	raw, err := fetch(ctx, q, page, e.cfg.PageSize)
	metrics.RecordCatalogRequest(op, err == nil, time.Since(start))
	if err != nil {
		return e.settleError(gen, page, err)
	}

	if strategy == resolutionUndecided {
		strategy, policies = e.resolver.decide(ctx, q)
	}
	annotations := e.resolver.annotate(ctx, strategy, policies, raw.Items)

	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		metrics.RecordStaleResultDiscarded()
		e.logger.Debug("discarded stale page result", "page", page, "keyword", q.Keyword)
		return Snapshot{}, ErrStaleResult
	}
	st := e.state
	if st.strategy == resolutionUndecided {
		st.strategy = strategy
		st.policies = policies
	}
	for i, place := range raw.Items {
		id := identifier.Normalize(place.ContentID)
		if _, dup := st.seen[id]; dup {
			continue
		}
		st.seen[id] = struct{}{}
		place.ContentID = id
		st.accumulated = append(st.accumulated, AggregatedItem{Place: place, Policy: annotations[i]})
	}
	st.rawFetched += int64(len(raw.Items))
	if raw.TotalCount > 0 {
		st.totalCount = raw.TotalCount
	}
	st.lastPage = page
	st.moreAvailable = pagination.HasMore(len(raw.Items), e.cfg.PageSize, st.rawFetched, st.totalCount)
	st.lastErr = nil
	e.rebuildDisplayLocked(st)
	e.inFlight = false
	e.scheduleEagerLocked()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	metrics.RecordPageAggregated(mode.String())
	e.logger.Info("page aggregated",
		"page", page,
		"mode", mode.String(),
		"raw_items", len(raw.Items),
		"visible", len(snap.Items),
		"more_available", snap.MoreAvailable,
		"strategy", strategy.String())
	e.notify(snap)
	return snap, nil
}

// settleError records a fetch failure unless the result is stale.
func (e *Engine) settleError(gen uint64, page int, err error) (Snapshot, error) {
	e.mu.Lock()
	if gen != e.generation {
		e.mu.Unlock()
		metrics.RecordStaleResultDiscarded()
		return Snapshot{}, ErrStaleResult
	}
	e.inFlight = false
	e.state.lastErr = err
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.notify(snap)
	return snap, fmt.Errorf("load page %d: %w", page, err)
}

// rebuildDisplayLocked derives the display list from accumulated items.
//
// With store-backed resolution an active filter drops items without a
// positive, constraint-satisfying policy. With fallback resolution the
// signal is too weak to drop on, so all items stay and annotated ones are
// partitioned to the front instead.
func (e *Engine) rebuildDisplayLocked(st *pageState) {
	q := st.query
	display := make([]AggregatedItem, 0, len(st.accumulated))
	if st.filterActive && st.strategy == resolutionStore {
		for _, it := range st.accumulated {
			if it.Policy == nil || !it.Policy.Allowed {
				continue
			}
			if !it.Policy.AdmitsSize(q.Pet.MinSizeClass) || !it.Policy.AdmitsCount(q.Pet.MinCount) {
				continue
			}
			display = append(display, it)
		}
	} else {
		display = append(display, st.accumulated...)
	}
	e.sorter.apply(display, q.Sort, st.filterActive)
	st.display = display
}

// Snapshot returns the current consumer-facing view.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{Loading: e.inFlight, At: time.Now()}
	st := e.state
	if st == nil {
		return snap
	}
	snap.Query = st.query
	snap.Items = make([]AggregatedItem, len(st.display))
	copy(snap.Items, st.display)
	snap.MoreAvailable = st.moreAvailable
	snap.Err = st.lastErr
	snap.RawFetched = st.rawFetched
	snap.TotalCount = st.totalCount
	snap.LastPage = st.lastPage
	return snap
}

// Subscribe registers a listener invoked after every state change. The
// returned function removes it.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.mu.Unlock()
	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

func (e *Engine) notify(snap Snapshot) {
	e.mu.Lock()
	fns := make([]func(Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// Close stops the eager-advance timer. The engine must not be used after.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	if e.eagerTimer != nil {
		e.eagerTimer.Stop()
		e.eagerTimer = nil
	}
}
