package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/repositories"
	"github.com/scrapdesk/scrap_ledger_app/internal/core/services"
	"github.com/scrapdesk/scrap_ledger_app/internal/handlers"
	"github.com/scrapdesk/scrap_ledger_app/internal/middleware"
	"github.com/scrapdesk/scrap_ledger_app/internal/platform/config"
	"github.com/scrapdesk/scrap_ledger_app/internal/repositories/storage"
	"github.com/scrapdesk/scrap_ledger_app/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, cleanup, err := newSnapshotStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize snapshot store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("Snapshot store initialized", slog.String("driver", cfg.StorageDriver))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(limitermem.NewStore(), rate)

	r.GET("/health", handlers.GetHome)

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))
	handlers.RegisterHandlers(v1, services.NewInventoryService(store), services.NewCashFlowService(store))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newSnapshotStore builds the configured SnapshotStore. The returned cleanup
// releases whatever the store holds open.
func newSnapshotStore(cfg *config.Config, logger *slog.Logger) (portsrepo.SnapshotStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return storage.NewMemoryStore(), func() {}, nil

	case config.StorageFile:
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() {}, nil

	case config.StoragePostgres:
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPgxStore(pool), pool.Close, nil
	}
	// LoadConfig rejects unknown drivers already.
	return storage.NewMemoryStore(), func() {}, nil
}

// runMigrations applies all pending migrations from the migrations
// directory against the configured database.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
