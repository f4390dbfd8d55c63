// Package pagination provides the pagination primitives shared by the HTTP
// handlers and the listing aggregation engine: offset arithmetic, parameter
// parsing, response metadata, and the raw-count continuation signal used
// for incremental loading.
package pagination

import pkgconfig "tourcatalog/pkg/config"

// Config bounds the page and limit query parameters.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns page=1, limit=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_LIMIT, and
// PAGINATION_MAX_LIMIT, keeping the defaults for anything unset or
// unparseable.
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPage:  pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage),
		DefaultLimit: pkgconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     pkgconfig.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
}
