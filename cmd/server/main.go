package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mercata/catalog/internal"
	adminhandler "github.com/mercata/catalog/internal/handler/admin"
	"github.com/mercata/catalog/internal/handler/api"
	"github.com/mercata/catalog/internal/middleware"
	"github.com/mercata/catalog/internal/repository"
	"github.com/mercata/catalog/internal/router"
	"github.com/mercata/catalog/internal/routes"
	"github.com/mercata/catalog/internal/service"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for the application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository and services
	repo := repository.New(pool)
	catalogService := service.NewCatalogService(repo)
	commentService := service.NewCommentService(repo)
	editor := service.NewEditor(catalogService, commentService, logger)

	validate := validator.New()

	// Build route dependencies
	apiDeps := routes.APIDeps{
		ProductHandler: api.NewProductHandler(catalogService, validate, logger),
		CommentHandler: api.NewCommentHandler(commentService, validate, logger),
	}
	adminDeps := routes.AdminDeps{
		ProductHandler: adminhandler.NewProductHandler(editor, logger),
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("catalog")

	// Global middleware chain. The request timeout is disabled unless
	// configured.
	chain := []router.Middleware{
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.CORSOrigins),
		middleware.MaxBodySize(cfg.MaxBodyBytes),
	}
	if cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.RequestTimeout))
	}
	chain = append(chain, router.Logger(logger))

	r := router.New(chain...)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Register route groups
	routes.RegisterAPIRoutes(r, apiDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting catalog server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
