package stats_test

import (
	"context"
	"errors"
	"testing"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/repository"
	"tourcatalog/internal/usecase/stats"
)

/* ───────── stub implementations ───────── */

type stubPolicyRepo struct {
	byCategory []repository.PetPolicyCategoryCount
	byArea     []repository.PetPolicyAreaCount
	err        error
}

func (s *stubPolicyRepo) List(_ context.Context, _ repository.PetPolicyFilter) ([]*entity.PetPolicy, error) {
	return nil, s.err
}
func (s *stubPolicyRepo) Get(_ context.Context, _ string) (*entity.PetPolicy, error) {
	return nil, s.err
}
func (s *stubPolicyRepo) Upsert(_ context.Context, _ *entity.PetPolicy) error { return s.err }
func (s *stubPolicyRepo) Delete(_ context.Context, _ string) error            { return s.err }
func (s *stubPolicyRepo) Count(_ context.Context) (int64, error)              { return 0, s.err }
func (s *stubPolicyRepo) CountByCategory(_ context.Context) ([]repository.PetPolicyCategoryCount, error) {
	return s.byCategory, s.err
}
func (s *stubPolicyRepo) CountByArea(_ context.Context) ([]repository.PetPolicyAreaCount, error) {
	return s.byArea, s.err
}

type stubBookmarkRepo struct {
	count int64
	err   error
}

func (s *stubBookmarkRepo) ListByVisitor(_ context.Context, _ string) ([]*entity.Bookmark, error) {
	return nil, s.err
}
func (s *stubBookmarkRepo) Create(_ context.Context, _ *entity.Bookmark) error { return s.err }
func (s *stubBookmarkRepo) Delete(_ context.Context, _, _ string) error        { return s.err }
func (s *stubBookmarkRepo) Exists(_ context.Context, _, _ string) (bool, error) {
	return false, s.err
}
func (s *stubBookmarkRepo) Count(_ context.Context) (int64, error) { return s.count, s.err }

/* ───────── tests ───────── */

func TestOverviewAggregatesTotals(t *testing.T) {
	svc := &stats.Service{
		Policies: &stubPolicyRepo{
			byCategory: []repository.PetPolicyCategoryCount{
				{Category: "12", Total: 10, Allowed: 4},
				{Category: "39", Total: 25, Allowed: 18},
			},
			byArea: []repository.PetPolicyAreaCount{
				{AreaCode: "6", Total: 35, Allowed: 22},
			},
		},
		Bookmarks: &stubBookmarkRepo{count: 120},
	}

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if got.PoliciesTotal != 35 || got.PoliciesAllowed != 22 {
		t.Fatalf("totals = %d/%d, want 35/22", got.PoliciesTotal, got.PoliciesAllowed)
	}
	if got.BookmarksTotal != 120 {
		t.Fatalf("bookmarks = %d, want 120", got.BookmarksTotal)
	}
	if len(got.ByCategory) != 2 || len(got.ByArea) != 1 {
		t.Fatal("breakdowns not carried through")
	}
	if got.GeneratedAt.IsZero() {
		t.Fatal("GeneratedAt not set")
	}
}

func TestOverviewPropagatesErrors(t *testing.T) {
	svc := &stats.Service{
		Policies:  &stubPolicyRepo{err: errors.New("db down")},
		Bookmarks: &stubBookmarkRepo{},
	}
	if _, err := svc.Overview(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRefreshGauges(t *testing.T) {
	svc := &stats.Service{
		Policies: &stubPolicyRepo{
			byCategory: []repository.PetPolicyCategoryCount{{Category: "39", Total: 5, Allowed: 3}},
		},
		Bookmarks: &stubBookmarkRepo{count: 9},
	}
	if err := svc.RefreshGauges(context.Background()); err != nil {
		t.Fatalf("RefreshGauges: %v", err)
	}

	svc.Bookmarks = &stubBookmarkRepo{err: errors.New("db down")}
	if err := svc.RefreshGauges(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
