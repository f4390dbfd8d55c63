package listing

import (
	"context"
	"time"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/repository"
)

// CatalogPage is one raw page of catalog results before any annotation,
// filtering or deduplication. TotalCount is the upstream's reported total
// for the whole query, not the page.
type CatalogPage struct {
	Items      []*entity.Place
	PageNo     int
	PageSize   int
	TotalCount int64
}

// CatalogSource fetches raw listing pages from the upstream catalog.
type CatalogSource interface {
	// Search fetches one page of keyword search results.
	Search(ctx context.Context, q Query, page, pageSize int) (*CatalogPage, error)

	// List fetches one page of area/category browse results.
	List(ctx context.Context, q Query, page, pageSize int) (*CatalogPage, error)
}

// AnnotationStore is the bulk pet-policy lookup used by the store-backed
// resolution strategy. *repository implementations satisfy it.
type AnnotationStore interface {
	List(ctx context.Context, filter repository.PetPolicyFilter) ([]*entity.PetPolicy, error)
}

// DetailInfo is the per-item payload returned by the detail fallback source.
type DetailInfo struct {
	// RawPetAttribute is the upstream's free-form pet admission field,
	// e.g. "가능", "불가", "Y" or a longer sentence.
	RawPetAttribute string
}

// DetailSource fetches per-item detail records used as a fallback annotation
// signal when the store has no coverage for the query scope.
type DetailSource interface {
	GetDetail(ctx context.Context, contentID, category string) (*DetailInfo, error)
}

// AggregatedItem is one display entry: a catalog place plus its resolved
// annotation, if any. Policy is nil when the item has no positive,
// resolvable annotation.
type AggregatedItem struct {
	Place  *entity.Place
	Policy *entity.PetPolicy
}

// Annotated reports whether the item carries a positive annotation.
func (it AggregatedItem) Annotated() bool {
	return it.Policy != nil && it.Policy.Allowed
}

// Snapshot is the consumer-facing view of engine state after a load settles.
// Items is a copy; callers may retain it across subsequent loads.
type Snapshot struct {
	Query         Query
	Items         []AggregatedItem
	MoreAvailable bool
	Loading       bool
	Err           error

	// RawFetched and TotalCount expose the continuation arithmetic inputs
	// for diagnostics; display-list length is deliberately not among them.
	RawFetched int64
	TotalCount int64
	LastPage   int

	At time.Time
}

// LoadMode selects how a fetched page merges into existing state.
type LoadMode int

const (
	// ModeReplace discards accumulated state and starts over at the
	// requested page.
	ModeReplace LoadMode = iota
	// ModeAppend merges the page into the accumulated list, deduplicating
	// by normalized identifier.
	ModeAppend
)

func (m LoadMode) String() string {
	if m == ModeAppend {
		return "append"
	}
	return "replace"
}
