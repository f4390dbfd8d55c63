package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/robfig/cron/v3"

	"tourcatalog/internal/handler/http/respond"
	pgRepo "tourcatalog/internal/infra/adapter/persistence/postgres"
	"tourcatalog/internal/observability/logging"
	"tourcatalog/internal/infra/db"
	workerPkg "tourcatalog/internal/infra/worker"
	statsUC "tourcatalog/internal/usecase/stats"
)

// waitForMigrations blocks until the API container has created the schema.
// The worker and the API share one database; only the API runs migrations.
func waitForMigrations(logger *slog.Logger, db *sql.DB) {
	const probe = "SELECT 1 FROM pet_policies LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := db.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

func main() {
	logger := logging.NewLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerMetrics.MustRegister()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("refresh_timeout", workerConfig.RefreshTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	svc := &statsUC.Service{
		Policies:  pgRepo.NewPetPolicyRepo(database),
		Bookmarks: pgRepo.NewBookmarkRepo(database),
	}

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	// Populate the gauges right away so dashboards don't wait for the
	// first scheduled tick.
	runRefreshJob(logger, svc, workerConfig, workerMetrics)

	startCronWorker(logger, svc, workerConfig, workerMetrics, healthServer)
}


// initDatabase opens the database connection and waits for migrations to complete.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	waitForMigrations(logger, database)
	return database
}

// startCronWorker starts the cron scheduler and runs the refresh job periodically.
func startCronWorker(logger *slog.Logger, svc *statsUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runRefreshJob(logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker marked as ready")

	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}

// runRefreshJob executes a single stats refresh with timeout and error handling.
func runRefreshJob(logger *slog.Logger, svc *statsUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	logger.Info("stats refresh started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RefreshTimeout)
	defer cancel()

	if err := svc.RefreshGauges(ctx); err != nil {
		logger.Error("stats refresh failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordRun("failure")
		metrics.RecordDuration(time.Since(startTime).Seconds())
		return
	}

	metrics.RecordRun("success")
	metrics.RecordDuration(time.Since(startTime).Seconds())
	metrics.RecordLastSuccess()

	logger.Info("stats refresh completed",
		slog.Duration("duration", time.Since(startTime)))
}
