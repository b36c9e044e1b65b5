package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mtour/api/routes"
	"mtour/internal/bookings"
	"mtour/internal/ops"
	"mtour/internal/realtime"
	"mtour/internal/shared/config"
	"mtour/internal/shared/database"
	"mtour/pkg/logger"
	"mtour/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize DB
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect:", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Preload the seat-hold Lua scripts so the first checkout doesn't pay
	// the script-load round trip
	if db.Redis != nil {
		holds := bookings.NewSeatHolds(db.Redis, cfg.Redis.SeatHoldTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := holds.PreloadScripts(ctx); err != nil {
			appLogger.Error("Failed to preload Redis Lua scripts", slog.Any("error", err))
			// Scripts will be loaded on first use
		} else {
			appLogger.Info("✅ Redis Lua scripts preloaded for seat holds")
		}
		cancel()
	}

	// Change-feed producer: every write path mirrors row changes to Kafka
	producer := newChangeProducer(cfg, appLogger)
	defer producer.Close()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			CatalogRequests: cfg.RateLimit.CatalogRequests,
			AuthRequests:    cfg.RateLimit.AuthRequests,
			BookingRequests: cfg.RateLimit.BookingRequests,
			AdminRequests:   cfg.RateLimit.AdminRequests,
			OpsRequests:     cfg.RateLimit.OpsRequests,
			HealthRequests:  cfg.RateLimit.CatalogRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Setup router with rate limiter
	appRouter := routes.NewRouter(cfg, db, producer, appLogger)
	engine := setupEngine(cfg, rateLimiter)
	appRouter.SetupRoutes(engine)

	// The KPI refresher recomputes the dashboard snapshot on a timer and
	// on every consumed change event for a watched table
	refresherCtx, refresherCancel := context.WithCancel(context.Background())
	defer refresherCancel()

	refresher := ops.NewKPIRefresher(appRouter.OpsService(), appLogger, cfg.Ops.KPIRefreshInterval)
	if consumer := newChangeConsumer(cfg, appLogger); consumer != nil {
		refresher.SubscribeTo(consumer)
		go func() {
			if err := consumer.Start(refresherCtx); err != nil {
				appLogger.Error("Change consumer failed", slog.Any("error", err))
			}
		}()
		defer consumer.Stop()
	}
	refresher.Start(refresherCtx)
	defer refresher.Stop()

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        engine,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", cfg.APIVersion),
			slog.Bool("redis_cache", (db.Redis != nil)),
			slog.Bool("change_feed", cfg.Kafka.Enabled),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// newChangeProducer builds the Kafka producer, or a noop drop-in when the
// change feed is disabled or unreachable.
func newChangeProducer(cfg *config.Config, appLogger *logger.Logger) realtime.Producer {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Change feed disabled, using noop producer")
		return realtime.NewNoopProducer()
	}

	producerConfig := realtime.DefaultProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.Topic = cfg.Kafka.ChangeTopic

	producer, err := realtime.NewKafkaChangeProducer(producerConfig)
	if err != nil {
		appLogger.Error("Failed to create change producer, falling back to noop", slog.Any("error", err))
		return realtime.NewNoopProducer()
	}

	appLogger.Info("Change feed producer connected",
		slog.Any("brokers", cfg.Kafka.Brokers),
		slog.String("topic", cfg.Kafka.ChangeTopic),
	)
	return producer
}

func newChangeConsumer(cfg *config.Config, appLogger *logger.Logger) realtime.Consumer {
	if !cfg.Kafka.Enabled {
		return nil
	}

	consumerConfig := realtime.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topic = cfg.Kafka.ChangeTopic
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup

	consumer, err := realtime.NewKafkaChangeConsumer(consumerConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to create change consumer", slog.Any("error", err))
		return nil
	}
	return consumer
}

func setupEngine(cfg *config.Config, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
