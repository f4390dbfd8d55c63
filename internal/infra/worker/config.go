// Package worker contains the scheduled maintenance component: a cron-driven
// job that refreshes the coverage statistics gauges, plus its health server
// and metrics.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"tourcatalog/internal/pkg/config"
)

// WorkerConfig controls the stats refresh schedule and the worker's
// operational endpoints. All fields have defaults; configuration loading is
// fail-open, so an invalid environment value falls back to the default with
// a warning instead of preventing startup.
type WorkerConfig struct {
	// CronSchedule is the refresh schedule as a 5-field cron expression.
	// Default: "*/10 * * * *" (every 10 minutes)
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	// Default: "Asia/Seoul"
	Timezone string

	// RefreshTimeout bounds a single refresh run. Default: 2 minutes.
	RefreshTimeout time.Duration

	// HealthPort is the port for the liveness/readiness HTTP server.
	// Default: 9091
	HealthPort int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule:   "*/10 * * * *",
		Timezone:       "Asia/Seoul",
		RefreshTimeout: 2 * time.Minute,
		HealthPort:     9091,
	}
}

// Validate checks every field and returns all violations at once.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.RefreshTimeout); err != nil {
		errs = append(errs, fmt.Errorf("refresh timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables:
//
//	WORKER_CRON_SCHEDULE, WORKER_TIMEZONE, WORKER_REFRESH_TIMEOUT,
//	WORKER_HEALTH_PORT
//
// Each value is validated; on failure the default is kept, a warning is
// logged and the fallback metrics are incremented. The returned error is
// always nil so a bad environment never takes the worker down.
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	anyFallback := false

	note := func(field string, fb *config.Fallback) {
		if fb == nil {
			return
		}
		anyFallback = true
		metrics.RecordValidationError(field)
		metrics.RecordFallback(field)
		logger.Warn("Configuration fallback applied",
			slog.String("field", field),
			slog.String("detail", fb.String()))
	}

	var fb *config.Fallback
	cfg.CronSchedule, fb = config.Env("WORKER_CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	note("cron_schedule", fb)

	cfg.Timezone, fb = config.Env("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	note("timezone", fb)

	cfg.RefreshTimeout, fb = config.EnvDuration("WORKER_REFRESH_TIMEOUT", cfg.RefreshTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 10*time.Second, 30*time.Minute)
	})
	note("refresh_timeout", fb)

	cfg.HealthPort, fb = config.EnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	note("health_port", fb)

	metrics.SetFallbackActive(anyFallback)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}
