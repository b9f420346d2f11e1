package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/adapters/notification"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/handlers"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/middleware"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/platform/config"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/repositories/database/pgsql"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils"
	"github.com/mma1979/assets-zakat-management-system-sub000/pkg/database"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Assets Zakat Management System API
// @version 1.0
// @description Backend for tracking holdings, liabilities and zakat obligation cycles.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	// Wire repositories, services and the notification sink
	repos := pgsql.NewRepositoryProvider(dbPool)
	notifier := notification.NewLogNotifier(posthogClient)
	serviceContainer := services.NewServiceContainer(repos, cfg, notifier)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	rateLimiter := limiter.New(memorystore.NewStore(), limiter.Rate{Period: time.Minute, Limit: 120})
	r.Use(middleware.RateLimit(rateLimiter))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Start the periodic sweep that creates cycles and marks them due.
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go runSweepLoop(sweepCtx, serviceContainer.Zakat, cfg.SweepInterval, logger)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending SQL migrations from the migrations directory.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations,
	// using the pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

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

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// runSweepLoop periodically processes every configured user's zakat
// cycles until the context is cancelled. One pass runs at startup so a
// restarted server catches up immediately.
func runSweepLoop(ctx context.Context, zakatService portssvc.ZakatCycleSvcFacade, interval time.Duration, logger *slog.Logger) {
	sweepLogger := logger.With(slog.String("component", "zakat_sweep"))

	runOnce := func() {
		sweepCtx := middleware.ContextWithLogger(ctx, sweepLogger)
		if _, err := zakatService.SweepPendingCycles(sweepCtx); err != nil {
			sweepLogger.Error("Sweep pass failed", slog.String("error", err.Error()))
		}
	}

	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
