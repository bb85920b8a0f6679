package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/def_finance/internal/adapters/localstore"
	"github.com/SscSPs/def_finance/internal/adapters/sheets"
	"github.com/SscSPs/def_finance/internal/core/cashstate"
	"github.com/SscSPs/def_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	"github.com/SscSPs/def_finance/internal/core/services"
	"github.com/SscSPs/def_finance/internal/core/snapshot"
	"github.com/SscSPs/def_finance/internal/dto"
	"github.com/SscSPs/def_finance/internal/handlers"
	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/SscSPs/def_finance/internal/platform/config"
	"github.com/SscSPs/def_finance/internal/repositories/database/pgsql"
	"github.com/SscSPs/def_finance/internal/utils"
	"github.com/SscSPs/def_finance/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title DEF Finance API
// @version 1.0
// @description Payables, receivables, cash-flow projection and managerial reports.

// @host localhost:8080
// @BasePath /api/v1

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

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	// The cash adjustment lives in a local store shared with other processes on this host.
	var cashStore cashstate.Store
	if cfg.LocalStorePath == "" {
		logger.Warn("LOCAL_STORE_PATH is empty, cash adjustment disabled")
	} else if localStore, err := localstore.OpenSQLiteStore(cfg.LocalStorePath, logger); err != nil {
		logger.Warn("Local store unavailable, cash adjustment disabled", slog.String("path", cfg.LocalStorePath), slog.String("error", err.Error()))
	} else {
		defer localStore.Close()
		cashStore = localStore
	}
	cash := cashstate.New(ctx, cashStore, logger)
	defer cash.Close()
	unsubscribe := cash.Subscribe(func(v decimal.Decimal) {
		logger.Info("Cash adjustment changed", slog.String("value", v.StringFixed(2)))
	})
	defer unsubscribe()

	repos := pgsql.NewRepositoryProvider(dbPool)
	entries := snapshot.NewLoader(func(ctx context.Context) ([]domain.Entry, error) {
		return repos.EntryRepo.ListEntries(ctx, nil)
	}, snapshot.WithTTL(cfg.EntrySnapshotTTL))

	var sheetSource portsrepo.SheetSource
	if cfg.SheetsConfigured() {
		client, err := sheets.NewClient(ctx, cfg.GoogleSpreadsheetID, sheets.Credentials{
			JSON: cfg.GoogleServiceAccountJSON,
			File: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			logger.Warn("Google Sheets import disabled", slog.String("error", err.Error()))
		} else {
			sheetSource = client
		}
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, entries, cash, sheetSource)

	importLimiter, err := middleware.NewMemoryLimiter(cfg.ImportRateLimit)
	if err != nil {
		logger.Error("Failed to create import rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(analytics))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, importLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
