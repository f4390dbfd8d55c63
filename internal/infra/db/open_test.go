package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestConnectionConfigFromEnv(t *testing.T) {
	def := DefaultConnectionConfig()

	tests := []struct {
		name string
		env  map[string]string
		want ConnectionConfig
	}{
		{
			name: "no environment uses defaults",
			env:  nil,
			want: def,
		},
		{
			name: "all overridden",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":     "100",
				"DB_MAX_IDLE_CONNS":     "50",
				"DB_CONN_MAX_LIFETIME":  "2h",
				"DB_CONN_MAX_IDLE_TIME": "45m",
			},
			want: ConnectionConfig{
				MaxOpenConns:    100,
				MaxIdleConns:    50,
				ConnMaxLifetime: 2 * time.Hour,
				ConnMaxIdleTime: 45 * time.Minute,
			},
		},
		{
			name: "partial override keeps remaining defaults",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":    "75",
				"DB_CONN_MAX_LIFETIME": "90m",
			},
			want: ConnectionConfig{
				MaxOpenConns:    75,
				MaxIdleConns:    def.MaxIdleConns,
				ConnMaxLifetime: 90 * time.Minute,
				ConnMaxIdleTime: def.ConnMaxIdleTime,
			},
		},
		{
			name: "unparseable values fall back",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":    "many",
				"DB_CONN_MAX_LIFETIME": "forever",
			},
			want: def,
		},
		{
			// A non-positive pool size would disable pooling entirely.
			name: "non-positive values are clamped to defaults",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":     "0",
				"DB_MAX_IDLE_CONNS":     "-5",
				"DB_CONN_MAX_LIFETIME":  "0s",
				"DB_CONN_MAX_IDLE_TIME": "-1h",
			},
			want: def,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{
				"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
				"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
			} {
				t.Setenv(key, tt.env[key])
				if tt.env[key] == "" {
					_ = os.Unsetenv(key)
				}
			}

			assert.Equal(t, tt.want, getConnectionConfigFromEnv())
		})
	}
}

// TestOpen_Integration verifies the pool against a real database. It only
// runs where DATABASE_URL points at one; Open exits the process otherwise.
func TestOpen_Integration(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	database := Open()
	defer func() { _ = database.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
