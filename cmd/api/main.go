package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"tourcatalog/internal/common/pagination"
	"tourcatalog/internal/config"
	pgRepo "tourcatalog/internal/infra/adapter/persistence/postgres"
	"tourcatalog/internal/infra/catalog"
	"tourcatalog/internal/infra/db"
	"tourcatalog/internal/infra/detail"
	pkgconfig "tourcatalog/pkg/config"

	annUC "tourcatalog/internal/usecase/annotation"
	bmUC "tourcatalog/internal/usecase/bookmark"
	listUC "tourcatalog/internal/usecase/listing"
	statsUC "tourcatalog/internal/usecase/stats"

	hhttp "tourcatalog/internal/handler/http"
	hannotation "tourcatalog/internal/handler/http/annotation"
	hbookmark "tourcatalog/internal/handler/http/bookmark"
	hlisting "tourcatalog/internal/handler/http/listing"
	"tourcatalog/internal/handler/http/requestid"
	hstats "tourcatalog/internal/handler/http/stats"
	"tourcatalog/internal/observability/logging"
	"tourcatalog/internal/observability/tracing"
)

func main() {
	logger := logging.NewLogger()

	catalogCfg, err := config.LoadCatalogConfig()
	if err != nil {
		logger.Error("invalid catalog configuration", slog.Any("error", err))
		os.Exit(1)
	}
	engineCfg, err := config.LoadEngineConfig()
	if err != nil {
		logger.Error("invalid engine configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, catalogCfg, engineCfg, version)

	runServer(logger, handler, version)
}


// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, upstream clients and services into the
// routed and middleware-wrapped HTTP handler.
func setupServer(logger *slog.Logger, database *sql.DB, catalogCfg config.CatalogConfig, engineCfg config.EngineConfig, version string) http.Handler {
	policyRepo := pgRepo.NewPetPolicyRepo(database)
	bookmarkRepo := pgRepo.NewBookmarkRepo(database)

	catalogClient := catalog.New(catalogCfg, logger)
	detailClient := detail.New(catalogCfg, logger)

	extraVocabulary, err := engineCfg.LoadExtraVocabulary()
	if err != nil {
		logger.Error("failed to load vocabulary file", slog.Any("error", err))
		os.Exit(1)
	}
	if len(extraVocabulary) > 0 {
		logger.Info("extra pet vocabulary loaded",
			slog.Int("synonyms", len(extraVocabulary)),
			slog.String("file", engineCfg.VocabularyFile))
	}

	listingCfg := listUC.Config{
		PageSize:            catalogCfg.PageSize,
		EagerDelay:          engineCfg.EagerDelay,
		EagerMinVisible:     engineCfg.EagerMinVisible,
		FallbackParallelism: engineCfg.FallbackParallelism,
		ExtraVocabulary:     extraVocabulary,
	}

	annotationSvc := &annUC.Service{Repo: policyRepo}
	bookmarkSvc := &bmUC.Service{Repo: bookmarkRepo}
	statsSvc := &statsUC.Service{Policies: policyRepo, Bookmarks: bookmarkRepo}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	hlisting.Register(mux, catalogClient, policyRepo, detailClient, listingCfg, logger)
	hannotation.Register(mux, annotationSvc, paginationCfg)
	hbookmark.Register(mux, bookmarkSvc)
	hstats.Register(mux, statsSvc)

	mux.Handle("GET /health", hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain, outermost
// first: Request ID → CORS → Rate Limit → Recovery → Logging → Tracing →
// Body Limit → Timeout → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	allowedOrigins := splitCSV(pkgconfig.GetEnvString("CORS_ALLOWED_ORIGINS", ""))

	rateLimiter := hhttp.NewRateLimiter(
		pkgconfig.GetEnvFloat("RATE_LIMIT_PER_SECOND", 20),
		pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 40),
	)

	requestTimeout := pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = hhttp.CORS(allowedOrigins)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := pkgconfig.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
