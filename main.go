package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/config"
	"github.com/nitij-msarii/rag-api-usertask/pkg/database"
	"github.com/nitij-msarii/rag-api-usertask/pkg/handlers"
	"github.com/nitij-msarii/rag-api-usertask/pkg/middleware"
	"github.com/nitij-msarii/rag-api-usertask/pkg/repositories"
	"github.com/nitij-msarii/rag-api-usertask/pkg/schema"
	"github.com/nitij-msarii/rag-api-usertask/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// The migration runner needs a database/sql handle; everything else
	// uses the pgx pool.
	migrationDB, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:             cfg.Database.URL(),
		MaxConnections:  cfg.Database.MaxConnections,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	registry := schema.NewRegistry()
	profile, err := registry.Get(cfg.SchemaProfile)
	if err != nil {
		logger.Fatal("Invalid schema profile", zap.Error(err))
	}

	historyRepo := repositories.NewHistoryRepository(db)
	executor := services.NewExecutor(db)
	translationService := services.NewTranslationService(profile, executor, historyRepo, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewQueryHandler(translationService, logger).RegisterRoutes(mux)
	handlers.NewSchemaHandler(profile, logger).RegisterRoutes(mux)
	handlers.NewHistoryHandler(translationService, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Recover(logger)(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting rag-api-usertask",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("schema_profile", profile.Name),
	)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" || env == "test" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
