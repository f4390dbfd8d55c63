package pagination_test

import (
	"testing"

	"tourcatalog/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{name: "first page", page: 1, limit: 20, want: 0},
		{name: "second page", page: 2, limit: 20, want: 20},
		{name: "third page", page: 3, limit: 20, want: 40},
		{name: "page 10 with limit 50", page: 10, limit: 50, want: 450},
		{name: "page 1 with limit 1", page: 1, limit: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.CalculateOffset(tt.page, tt.limit); got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "zero total yields one page", total: 0, limit: 20, want: 1},
		{name: "under one page", total: 10, limit: 20, want: 1},
		{name: "exactly one page", total: 20, limit: 20, want: 1},
		{name: "one over", total: 21, limit: 20, want: 2},
		{name: "many pages", total: 100, limit: 20, want: 5},
		{name: "57 items at 20 per page", total: 57, limit: 20, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.CalculateTotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
