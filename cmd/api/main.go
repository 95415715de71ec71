package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/report"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/dashboard"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/orderqueue"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/usecase/paging"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/export"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ledger-dashboard/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	loc, err := cfg.Dashboard.LoadLocation()
	if err != nil {
		log.Fatalf("Invalid dashboard location %q: %v", cfg.Dashboard.Location, err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider(loc)

	// Connect to the database
	dbConfig := database.ConfigFromAppConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(ctx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Initialize repositories
	repoOpts := repository.DefaultOptions()
	repoOpts.SearchResultCap = dbConfig.SearchResultCap
	repoOpts.Location = loc
	repoOpts.Metrics = dbManager.Metrics()
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), repoOpts, appLogger, tp)
	orderRepo := repository.NewOrderRepository(dbManager.DB(), repoOpts, appLogger, tp)

	// Initialize use cases
	snapshotCache := cache.NewMemoryCache(time.Duration(cfg.Dashboard.CacheCleanupMinutes) * time.Minute)
	dashboardService := dashboard.NewService(
		transactionRepo,
		snapshotCache,
		[]report.Exporter{export.NewCSVExporter(), export.NewXLSXExporter()},
		tp,
		appLogger,
		dashboardConfig(cfg, loc),
	)
	defer dashboardService.Close()

	orderQueue := orderqueue.NewService(orderRepo, snapshotCache, tp, appLogger, orderqueue.Config{
		PageSize:        cfg.Dashboard.PageSize,
		FreshnessWindow: coreport.Duration(cfg.Dashboard.FreshnessWindowSeconds) * coreport.Second,
		FetchTimeout:    coreport.Duration(cfg.Dashboard.FetchTimeoutSeconds) * coreport.Second,
		RowHeight:       cfg.Window.RowHeight,
	})
	defer orderQueue.Close()

	// Warm the snapshots; a failure here is retried by the scheduler
	for name, load := range map[string]func(context.Context) error{
		dashboard.Dataset:  dashboardService.Load,
		orderqueue.Dataset: orderQueue.Load,
	} {
		if err := load(ctx); err != nil {
			appLogger.Warn("Initial snapshot load failed", map[string]any{
				"dataset": name,
				"error":   err.Error(),
			})
		}
	}

	refreshScheduler := scheduler.NewRefreshScheduler(loc, time.Duration(cfg.Dashboard.FetchTimeoutSeconds)*time.Second, appLogger)
	refreshScheduler.Register(dashboard.Dataset, dashboardService)
	refreshScheduler.Register(orderqueue.Dataset, orderQueue)
	if err := refreshScheduler.Start(ctx, cfg.Dashboard.RefreshSchedule); err != nil {
		appLogger.Error("Failed to start refresh scheduler", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	transactionHandler := handler.NewTransactionHandler(dashboardService, appLogger)
	orderHandler := handler.NewOrderHandler(orderQueue, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, transactionHandler, orderHandler, healthHandler, routes.RateLimitConfig{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Store:             cache.NewMemoryCache(time.Duration(cfg.Dashboard.CacheCleanupMinutes) * time.Minute),
	}, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	refreshScheduler.Stop(shutdownCtx)

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// dashboardConfig converts the dashboard and window sections into engine settings
func dashboardConfig(cfg *config.Config, loc *time.Location) dashboard.Config {
	return dashboard.Config{
		PageSize:        cfg.Dashboard.PageSize,
		SearchDebounce:  coreport.Duration(cfg.Dashboard.SearchDebounceMs) * coreport.Millisecond,
		FreshnessWindow: coreport.Duration(cfg.Dashboard.FreshnessWindowSeconds) * coreport.Second,
		FetchTimeout:    coreport.Duration(cfg.Dashboard.FetchTimeoutSeconds) * coreport.Second,
		Location:        loc,
		Window: paging.WindowConfig{
			RowHeight:  cfg.Window.RowHeight,
			BufferRows: cfg.Window.BufferRows,
			Throttle:   coreport.Duration(cfg.Window.ThrottleMs) * coreport.Millisecond,
			Threshold:  cfg.Window.Threshold,
		},
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Database credentials may come from the LD_DB_* environment instead of the file
	required := []struct {
		value, env, name string
	}{
		{cfg.Database.Host, "LD_DB_HOST", "database.host"},
		{cfg.Database.Username, "LD_DB_USERNAME", "database.username"},
		{cfg.Database.Password, "LD_DB_PASSWORD", "database.password"},
		{cfg.Database.Database, "LD_DB_NAME", "database.database"},
	}
	for _, r := range required {
		if r.value == "" && os.Getenv(r.env) == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.name, r.env))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Dashboard.PageSize <= 0 {
		missingConfigs = append(missingConfigs, "dashboard.pageSize")
	}
	if cfg.Dashboard.FetchTimeoutSeconds <= 0 {
		missingConfigs = append(missingConfigs, "dashboard.fetchTimeoutSeconds")
	}
	if cfg.Window.RowHeight <= 0 {
		missingConfigs = append(missingConfigs, "window.rowHeight")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.RateLimit.Enabled && (cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.Burst <= 0) {
		return errors.New("rateLimit.requestsPerSecond and rateLimit.burst must be positive when rate limiting is enabled")
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if !cfg.RateLimit.Enabled {
			warnings = append(warnings, "rateLimit.enabled should be true in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
