// Package stats aggregates pet-policy coverage figures for the operator
// dashboard and refreshes the corresponding gauges.
package stats

import (
	"context"
	"fmt"
	"time"

	"tourcatalog/internal/observability/metrics"
	"tourcatalog/internal/repository"
)

// Overview is the coverage summary served on the dashboard endpoint.
type Overview struct {
	PoliciesTotal   int64                               `json:"policiesTotal"`
	PoliciesAllowed int64                               `json:"policiesAllowed"`
	BookmarksTotal  int64                               `json:"bookmarksTotal"`
	ByCategory      []repository.PetPolicyCategoryCount `json:"byCategory"`
	ByArea          []repository.PetPolicyAreaCount     `json:"byArea"`
	GeneratedAt     time.Time                           `json:"generatedAt"`
}

// Service computes coverage statistics.
type Service struct {
	Policies  repository.PetPolicyRepository
	Bookmarks repository.BookmarkRepository
}

// Overview builds the full coverage summary.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	byCategory, err := s.Policies.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	byArea, err := s.Policies.CountByArea(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by area: %w", err)
	}
	bookmarks, err := s.Bookmarks.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookmarks: %w", err)
	}

	var total, allowed int64
	for _, c := range byCategory {
		total += c.Total
		allowed += c.Allowed
	}
	return &Overview{
		PoliciesTotal:   total,
		PoliciesAllowed: allowed,
		BookmarksTotal:  bookmarks,
		ByCategory:      byCategory,
		ByArea:          byArea,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// RefreshGauges recomputes the overview and pushes it into the exported
// gauges. The worker runs this on a schedule.
func (s *Service) RefreshGauges(ctx context.Context) error {
	overview, err := s.Overview(ctx)
	if err != nil {
		return fmt.Errorf("refresh gauges: %w", err)
	}
	metrics.UpdatePetPolicyTotals(overview.PoliciesTotal, overview.PoliciesAllowed)
	metrics.UpdateBookmarksTotal(overview.BookmarksTotal)
	return nil
}
