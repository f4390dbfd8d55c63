package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/policies/125266", "/policies/:contentId"},
		{"/policies/1", "/policies/:contentId"},
		{"/bookmarks/125266", "/bookmarks/:contentId"},
		{"/places", "/places"},
		{"/policies", "/policies"},
		{"/stats/overview", "/stats/overview"},
		{"/healthz", "/healthz"},
		{"/policies/abc", "/policies/abc"}, // non-numeric segment stays as-is
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Fatalf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
