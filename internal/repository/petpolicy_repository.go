package repository

import (
	"context"

	"tourcatalog/internal/domain/entity"
)

// PetPolicyFilter narrows bulk pet-policy queries to the scope of a catalog
// query. All fields are optional; the zero value selects everything.
type PetPolicyFilter struct {
	AreaCode   string   // Optional: restrict to one catalog area
	Categories []string // Optional: restrict to category codes (union)
	Allowed    *bool    // Optional: restrict by allowed flag
}

// PetPolicyCategoryCount is one row of the per-category policy breakdown.
type PetPolicyCategoryCount struct {
	Category string
	Total    int64
	Allowed  int64
}

// PetPolicyAreaCount is one row of the per-area policy breakdown.
type PetPolicyAreaCount struct {
	AreaCode string
	Total    int64
	Allowed  int64
}

type PetPolicyRepository interface {
	// List returns all policies matching the filter. An empty result is not
	// an error: store coverage for a given scope is routinely zero.
	List(ctx context.Context, filter PetPolicyFilter) ([]*entity.PetPolicy, error)
	// Get returns the policy for a normalized content ID.
	// Returns (nil, nil) if no record exists.
	Get(ctx context.Context, contentID string) (*entity.PetPolicy, error)
	// Upsert inserts the policy or replaces the existing record for the
	// same content ID.
	Upsert(ctx context.Context, policy *entity.PetPolicy) error
	// Delete removes the policy for a content ID.
	Delete(ctx context.Context, contentID string) error
	// Count returns the total number of stored policies.
	Count(ctx context.Context) (int64, error)
	// CountByCategory returns the policy totals grouped by place category.
	CountByCategory(ctx context.Context) ([]PetPolicyCategoryCount, error)
	// CountByArea returns the policy totals grouped by area code.
	CountByArea(ctx context.Context) ([]PetPolicyAreaCount, error)
}
