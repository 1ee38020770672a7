package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/config"
	"github.com/mlearn/backend/internal/handlers"
	"github.com/mlearn/backend/internal/logger"
	"github.com/mlearn/backend/internal/middlewares"
	"github.com/mlearn/backend/internal/payment"
	"github.com/mlearn/backend/internal/repositories"
	"github.com/mlearn/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// @title MLearn Storefront API
// @version 1.0
// @description API for the MLearn e-learning storefront: catalog, cart, wishlist, progress, plans, and auth

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting MLearn Storefront Service",
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// Connect to the state database
	db, err := connectDB(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db, cfg.Storage.Driver); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize the state repository and the static catalog
	stateRepo := repositories.NewStateRepository(db, logger.Logger)
	cat := catalog.New()

	// Initialize the payment collaborator
	gateway := payment.NewSimulatedGateway(logger.Logger)

	// Initialize services
	discountService := services.NewDiscountService(stateRepo, logger.Logger)
	subscriptionService := services.NewSubscriptionService(stateRepo, cat, discountService, gateway, cfg.Payment.MerchantName, logger.Logger)
	cartService := services.NewCartService(stateRepo, cat, subscriptionService, gateway, cfg.Payment.MerchantName, logger.Logger)
	wishlistService := services.NewWishlistService(stateRepo, cat, logger.Logger)
	progressService := services.NewProgressService(stateRepo, cat, discountService, logger.Logger)
	searchService := services.NewSearchService(cat, cfg.Search.DebounceWindow, nil, logger.Logger)
	authService := services.NewAuthService(stateRepo, logger.Logger)
	courseService := services.NewCourseService(cat, searchService, subscriptionService, progressService, cartService, wishlistService)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService, progressService, logger.Logger)
	cartHandler := handlers.NewCartHandler(cartService, logger.Logger)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, logger.Logger)
	pricingHandler := handlers.NewPricingHandler(subscriptionService, logger.Logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger.Logger)
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		courseHandler.RegisterRoutes(r)
		cartHandler.RegisterRoutes(r)
		wishlistHandler.RegisterRoutes(r)
		pricingHandler.RegisterRoutes(r)
		searchHandler.RegisterRoutes(r)
		authHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the state database for the configured driver
func connectDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.Storage.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Storage.Driver == config.DriverMySQL {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// The SQLite file is written by a single process
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations for the configured driver
func runMigrations(db *sql.DB, driverName string) error {
	migrationPath := "file://migrations"
	if _, statErr := os.Stat("migrations"); os.IsNotExist(statErr) {
		// Try parent directory if running from cmd
		if _, statErr := os.Stat("../migrations"); statErr == nil {
			migrationPath = "file://../migrations"
		}
	}

	var (
		m   *migrate.Migrate
		err error
	)
	switch driverName {
	case config.DriverMySQL:
		d, derr := migratemysql.WithInstance(db, &migratemysql.Config{
			MigrationsTable: "storefront_schema_migrations",
		})
		if derr != nil {
			return fmt.Errorf("failed to create migration driver: %w", derr)
		}
		m, err = migrate.NewWithDatabaseInstance(migrationPath, driverName, d)
	default:
		d, derr := migratesqlite.WithInstance(db, &migratesqlite.Config{
			MigrationsTable: "storefront_schema_migrations",
		})
		if derr != nil {
			return fmt.Errorf("failed to create migration driver: %w", derr)
		}
		m, err = migrate.NewWithDatabaseInstance(migrationPath, driverName, d)
	}
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
