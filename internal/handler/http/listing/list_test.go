package listing_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourcatalog/internal/domain/entity"
	hl "tourcatalog/internal/handler/http/listing"
	"tourcatalog/internal/repository"
	uc "tourcatalog/internal/usecase/listing"
)

/* ───────── stubs ───────── */

type stubCatalog struct {
	pages map[int][]*entity.Place
	total int64
	err   error
	calls int
}

func (s *stubCatalog) fetch(page, pageSize int) (*uc.CatalogPage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &uc.CatalogPage{
		Items:      s.pages[page],
		PageNo:     page,
		PageSize:   pageSize,
		TotalCount: s.total,
	}, nil
}

func (s *stubCatalog) Search(_ context.Context, _ uc.Query, page, pageSize int) (*uc.CatalogPage, error) {
	return s.fetch(page, pageSize)
}

func (s *stubCatalog) List(_ context.Context, _ uc.Query, page, pageSize int) (*uc.CatalogPage, error) {
	return s.fetch(page, pageSize)
}

type stubStore struct {
	policies []*entity.PetPolicy
}

func (s *stubStore) List(_ context.Context, _ repository.PetPolicyFilter) ([]*entity.PetPolicy, error) {
	return s.policies, nil
}

func place(id int, title string) *entity.Place {
	return &entity.Place{
		ContentID: fmt.Sprintf("%d", id),
		Title:     title,
		Category:  entity.CategoryAttraction,
		AreaCode:  "31",
	}
}

func handlerWith(catalog *stubCatalog, store *stubStore, cfg uc.Config) hl.ListHandler {
	h := hl.ListHandler{
		Catalog:   catalog,
		EngineCfg: cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if store != nil {
		h.Store = store
	}
	return h
}

/* ───────── tests ───────── */

func TestListHandler_Success(t *testing.T) {
	catalog := &stubCatalog{
		pages: map[int][]*entity.Place{
			1: {place(1, "남산타워"), place(2, "경복궁")},
		},
		total: 2,
	}
	handler := handlerWith(catalog, nil, uc.Config{PageSize: 20})

	req := httptest.NewRequest(http.MethodGet, "/places?areaCode=31", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp hl.ResponseDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(resp.Items))
	}
	if resp.MoreAvailable {
		t.Error("moreAvailable = true, want false for fully delivered result")
	}
	if resp.TotalCount != 2 {
		t.Errorf("totalCount = %d, want 2", resp.TotalCount)
	}
}

func TestListHandler_AnnotationsAttached(t *testing.T) {
	catalog := &stubCatalog{
		pages: map[int][]*entity.Place{
			1: {place(1, "애견카페 봄"), place(2, "일반식당")},
		},
		total: 2,
	}
	store := &stubStore{policies: []*entity.PetPolicy{
		{ContentID: "1", Allowed: true, SizeClass: entity.SizeClassMedium, Notes: "소형견 환영"},
	}}
	handler := handlerWith(catalog, store, uc.Config{PageSize: 20})

	req := httptest.NewRequest(http.MethodGet, "/places?areaCode=31", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp hl.ResponseDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	var annotated int
	for _, it := range resp.Items {
		if it.PetPolicy != nil {
			annotated++
			if !it.PetPolicy.Allowed {
				t.Errorf("item %s: allowed = false, want true", it.ContentID)
			}
		}
	}
	if annotated != 1 {
		t.Errorf("annotated items = %d, want 1", annotated)
	}
}

func TestListHandler_FilterFillsSparseResult(t *testing.T) {
	// Pet filter drops everything on page 1; the handler should pull
	// follow-up pages within the same request until items are visible.
	catalog := &stubCatalog{
		pages: map[int][]*entity.Place{
			1: {place(1, "a"), place(2, "b")},
			2: {place(3, "c"), place(4, "d")},
		},
		total: 4,
	}
	store := &stubStore{policies: []*entity.PetPolicy{
		{ContentID: "3", Allowed: true},
	}}
	handler := handlerWith(catalog, store, uc.Config{PageSize: 2, EagerMinVisible: 1})

	req := httptest.NewRequest(http.MethodGet, "/places?areaCode=31&pet=required", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	if catalog.calls != 2 {
		t.Errorf("catalog calls = %d, want 2 (fill-up page)", catalog.calls)
	}

	var resp hl.ResponseDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ContentID != "3" {
		t.Fatalf("items = %+v, want the single allowed place 3", resp.Items)
	}
	if resp.RawFetched != 4 {
		t.Errorf("rawFetched = %d, want 4", resp.RawFetched)
	}
}

func TestListHandler_InvalidParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"bad sort", "sort=alphabetical"},
		{"bad pet mode", "pet=maybe"},
		{"bad category", "categories=99"},
		{"bad page", "page=0"},
		{"oversized min size", "petMinSize=7"},
		{"non-numeric count", "petMinCount=two"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := &stubCatalog{pages: map[int][]*entity.Place{}, total: 0}
			handler := handlerWith(catalog, nil, uc.Config{})

			req := httptest.NewRequest(http.MethodGet, "/places?"+tc.query, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			if catalog.calls != 0 {
				t.Errorf("catalog calls = %d, want 0 on validation failure", catalog.calls)
			}
		})
	}
}

func TestListHandler_UpstreamFailure(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("connection refused")}
	handler := handlerWith(catalog, nil, uc.Config{})

	req := httptest.NewRequest(http.MethodGet, "/places?keyword=박물관", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadGateway)
	}
}

func TestListHandler_SearchRequiresKeyword(t *testing.T) {
	catalog := &stubCatalog{
		pages: map[int][]*entity.Place{
			1: {place(1, "남산타워")},
		},
		total: 1,
	}
	handler := handlerWith(catalog, nil, uc.Config{})
	handler.RequireKeyword = true

	req := httptest.NewRequest(http.MethodGet, "/places/search", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if catalog.calls != 0 {
		t.Errorf("catalog calls = %d, want 0 without a keyword", catalog.calls)
	}

	req = httptest.NewRequest(http.MethodGet, "/places/search?keyword=타워", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusOK)
	}
	var resp hl.ResponseDTO
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Errorf("items = %d, want 1", len(resp.Items))
	}
}
