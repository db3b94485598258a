package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/config"
	"github.com/localnerve/jam-build-catalog/internal/database"
	"github.com/localnerve/jam-build-catalog/internal/handlers"
	"github.com/localnerve/jam-build-catalog/internal/logger"
	"github.com/localnerve/jam-build-catalog/internal/metrics"
	"github.com/localnerve/jam-build-catalog/internal/middleware"
	"github.com/localnerve/jam-build-catalog/internal/services"
	"github.com/localnerve/jam-build-catalog/internal/telemetry"
	"github.com/localnerve/jam-build-catalog/internal/utils"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/localnerve/jam-build-catalog/docs/api" // Swagger docs
)

// @title Jam Build Catalog API
// @version 1.0.0
// @description Reusable software component catalog with search, usage tracking and category taxonomy
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/jam-build-catalog
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.Nop()
		if l, lerr := logger.New("development", "error"); lerr == nil {
			log = l
		}
		log.Fatal("failed to load configuration", "error", err)
	}

	log, err := logger.New(cfg.LogMode, os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	if cfg.SeedData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := database.Seed(ctx, db, log)
		cancel()
		if err != nil {
			log.Fatal("failed to seed catalog", "error", err)
		}
		log.Info("seed complete", "components", n)
	}

	service := catalog.NewService(services.NewCatalogStore(db), log.With("component", "catalog"))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: cfg.LogMode == "production",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prom := fiberprometheus.New("catalog")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	health := &handlers.HealthHandler{Config: cfg, DB: db, Log: log}
	app.Get("/health", health.Health)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Authorizer is initialized on the first catalog request, once the origin is known
	var validator middleware.SessionValidator
	if cfg.AuthzDisabled {
		log.Warn("authorizer disabled, catalog requests will be refused")
	} else {
		authz := services.NewAuthorizerValidator(cfg, log)
		api.Use("/catalog", middleware.InitSession(authz))
		validator = authz
	}

	catalogHandler := &handlers.CatalogHandler{
		Service: service,
		Stats:   telemetry.NewQueryStats(cfg.QueryStatsCapacity),
		Metrics: metrics.New(prometheus.DefaultRegisterer),
		Log:     log,
	}
	catalogHandler.Register(api, validator)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("gracefully shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	// Start server
	log.Info("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", "error", err)
	}

	log.Info("server stopped")
}
