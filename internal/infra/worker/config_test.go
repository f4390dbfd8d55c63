package worker

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

// Metrics register once per process; every test shares this instance.
var globalTestMetrics = NewWorkerMetrics()

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CronSchedule != "*/10 * * * *" {
		t.Errorf("CronSchedule = %q, want %q", cfg.CronSchedule, "*/10 * * * *")
	}
	if cfg.Timezone != "Asia/Seoul" {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, "Asia/Seoul")
	}
	if cfg.RefreshTimeout != 2*time.Minute {
		t.Errorf("RefreshTimeout = %v, want %v", cfg.RefreshTimeout, 2*time.Minute)
	}
	if cfg.HealthPort != 9091 {
		t.Errorf("HealthPort = %d, want 9091", cfg.HealthPort)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestWorkerConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*WorkerConfig)
		wantErr bool
	}{
		{"valid defaults", func(c *WorkerConfig) {}, false},
		{"custom valid schedule", func(c *WorkerConfig) { c.CronSchedule = "0 */6 * * *" }, false},
		{"invalid cron", func(c *WorkerConfig) { c.CronSchedule = "not a schedule" }, true},
		{"empty cron", func(c *WorkerConfig) { c.CronSchedule = "" }, true},
		{"invalid timezone", func(c *WorkerConfig) { c.Timezone = "Mars/Olympus" }, true},
		{"zero timeout", func(c *WorkerConfig) { c.RefreshTimeout = 0 }, true},
		{"negative timeout", func(c *WorkerConfig) { c.RefreshTimeout = -time.Second }, true},
		{"privileged port", func(c *WorkerConfig) { c.HealthPort = 80 }, true},
		{"port too high", func(c *WorkerConfig) { c.HealthPort = 70000 }, true},
		{"port boundaries", func(c *WorkerConfig) { c.HealthPort = 1024 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestWorkerConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := WorkerConfig{
		CronSchedule:   "bad",
		Timezone:       "bad",
		RefreshTimeout: -1,
		HealthPort:     1,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() = nil, want aggregated error")
	}
}

func TestLoadConfigFromEnv_AllValid(t *testing.T) {
	t.Setenv("WORKER_CRON_SCHEDULE", "15 3 * * *")
	t.Setenv("WORKER_TIMEZONE", "UTC")
	t.Setenv("WORKER_REFRESH_TIMEOUT", "5m")
	t.Setenv("WORKER_HEALTH_PORT", "9100")

	cfg, err := LoadConfigFromEnv(testLogger(), globalTestMetrics)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.CronSchedule != "15 3 * * *" {
		t.Errorf("CronSchedule = %q, want %q", cfg.CronSchedule, "15 3 * * *")
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Timezone)
	}
	if cfg.RefreshTimeout != 5*time.Minute {
		t.Errorf("RefreshTimeout = %v, want 5m", cfg.RefreshTimeout)
	}
	if cfg.HealthPort != 9100 {
		t.Errorf("HealthPort = %d, want 9100", cfg.HealthPort)
	}
}

func TestLoadConfigFromEnv_MissingEnvUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv(testLogger(), globalTestMetrics)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("config = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadConfigFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_CRON_SCHEDULE", "whenever")
	t.Setenv("WORKER_TIMEZONE", "Nowhere/Land")
	t.Setenv("WORKER_REFRESH_TIMEOUT", "48h") // outside allowed range
	t.Setenv("WORKER_HEALTH_PORT", "22")

	cfg, err := LoadConfigFromEnv(testLogger(), globalTestMetrics)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v, fail-open loading must not error", err)
	}
	want := DefaultConfig()
	if *cfg != want {
		t.Errorf("config = %+v, want all defaults after fallback %+v", *cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config failed validation: %v", err)
	}
}

func TestLoadConfigFromEnv_PartiallyValid(t *testing.T) {
	t.Setenv("WORKER_CRON_SCHEDULE", "0 4 * * *")
	t.Setenv("WORKER_HEALTH_PORT", "not-a-port")

	cfg, err := LoadConfigFromEnv(testLogger(), globalTestMetrics)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.CronSchedule != "0 4 * * *" {
		t.Errorf("CronSchedule = %q, want the valid override", cfg.CronSchedule)
	}
	if cfg.HealthPort != DefaultConfig().HealthPort {
		t.Errorf("HealthPort = %d, want default after fallback", cfg.HealthPort)
	}
}
