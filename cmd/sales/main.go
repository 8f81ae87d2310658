package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/salestrack/sales-ledger/internal/sales"
	httpDelivery "github.com/salestrack/sales-ledger/internal/sales/delivery/http"
	"github.com/salestrack/sales-ledger/internal/sales/repository"
	"github.com/salestrack/sales-ledger/kafka"
	"github.com/salestrack/sales-ledger/pkg/clock"
	"github.com/salestrack/sales-ledger/pkg/config"
	"github.com/salestrack/sales-ledger/pkg/database"
	"github.com/salestrack/sales-ledger/pkg/logger"
	"github.com/salestrack/sales-ledger/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("sales-service", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Name, cfg.App.IsDevelopment())
	logger.SetLevel(cfg.App.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.App.Environment).
		Str("log_level", cfg.App.LogLevel).
		Str("ledger_timezone", cfg.Ledger.Timezone).
		Msg("Starting sales service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.App.Name)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.NewGormSaleRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Resolve the ledger calendar
	loc, err := cfg.Ledger.Location()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Invalid ledger timezone")
	}

	// Initialize handler with Wire DI
	handler, err := sales.InitializeHTTPHandler(db, clock.NewRealClock(), loc)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Optional Kafka publisher for sale lifecycle events
	if cfg.Kafka.Enabled() {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
		} else {
			defer publisher.Close()
			handler.WithPublisher(publisher)
		}
	}

	// Setup router
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware for the web and mobile dashboards
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: httpDelivery.TracingMiddleware(cfg.App.Name, c.Handler(router)),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTP.Port).
			Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down sales service")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}
