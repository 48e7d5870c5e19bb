package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/veloxrent/rental-admin/internal/config"
	"github.com/veloxrent/rental-admin/internal/handler"
	"github.com/veloxrent/rental-admin/internal/repository"
	"github.com/veloxrent/rental-admin/internal/service"
	"github.com/veloxrent/rental-admin/internal/validator"
	"github.com/veloxrent/rental-admin/pkg/database"
)

func main() {
	// Load configuration first
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize zerolog based on configuration
	initLogger(cfg)

	// Create context for startup
	ctx := context.Background()

	// Initialize database pool with retry
	pool, err := database.NewPool(ctx, cfg.DB.DSN(), 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Rental Admin API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB body limit
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New()) // Adds X-Request-ID header to all requests
	app.Use(logger.New())
	app.Use(handler.HTTPMetrics())

	// Initialize validator
	validate := validator.New()

	// Repositories
	couponRepo := repository.NewCouponRepository(pool)
	redemptionRepo := repository.NewRedemptionRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)
	pageRepo := repository.NewPageRepository(pool)

	// Services
	couponService := service.NewCouponService(couponRepo)
	redemptionService := service.NewRedemptionService(couponRepo, redemptionRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	pageService := service.NewPageService(pageRepo)

	// Handlers
	couponHandler := handler.NewCouponHandler(couponService, validate)
	applyHandler := handler.NewApplyHandler(redemptionService, couponService, validate)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	pageHandler := handler.NewPageHandler(pageService, validate)
	healthHandler := handler.NewHealthHandler(pool)

	app.Get("/health", healthHandler.Check)

	// Admin console routes
	admin := app.Group("/admin")
	admin.Post("/coupons", couponHandler.CreateCoupon)
	admin.Post("/coupons/list", couponHandler.ListCoupons)
	admin.Post("/coupons/check-code", couponHandler.CheckCode)
	admin.Get("/coupons/:id", couponHandler.GetCoupon)
	admin.Put("/coupons/:id", couponHandler.UpdateCoupon)
	admin.Delete("/coupons/:id", couponHandler.DeleteCoupon)
	admin.Get("/dashboard/counts", dashboardHandler.Counts)
	admin.Post("/pages", pageHandler.CreatePage)
	admin.Get("/pages", pageHandler.ListPages)
	admin.Get("/pages/:id/messages", pageHandler.ListMessages)
	admin.Put("/pages/:id/messages", pageHandler.UpsertMessage)
	admin.Delete("/messages/:id", pageHandler.DeleteMessage)

	// End-user app routes
	appAPI := app.Group("/app")
	appAPI.Post("/coupons/apply", applyHandler.ApplyCoupon)
	appAPI.Get("/companies/:id/coupons", applyHandler.ListCompanyCoupons)
	appAPI.Get("/pages/:id/messages", pageHandler.ListMessages)

	// Prometheus exposition on its own listener, never on the public API port
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
		go func() {
			log.Info().Str("port", cfg.Metrics.Port).Msg("starting metrics server")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	// Start server with graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	log.Info().Int("timeout_seconds", cfg.Server.ShutdownTimeout).Msg("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	// Shutdown server (waits for in-flight requests)
	log.Info().Msg("waiting for in-flight requests to complete...")
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during metrics server shutdown")
		}
	}

	// Close database pool AFTER server shutdown (even if shutdown timed out)
	log.Info().Msg("closing database connections...")
	pool.Close()
	log.Info().Msg("database connections closed")
	log.Info().Msg("server stopped")
}

// initLogger configures zerolog based on the application configuration.
func initLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Pretty {
		// Human-readable output for development
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			With().Timestamp().Logger()
	} else {
		// JSON output for production
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
