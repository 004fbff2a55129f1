// Package main is the entry point for the brokerage fee service.
// It loads configuration, wires the fee service, and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"brokerfee/internal/config"
	"brokerfee/internal/logger"
	"brokerfee/internal/metrics"
	"brokerfee/internal/repositories/cache"
	"brokerfee/internal/routes"
	"brokerfee/internal/services/fee"
	"brokerfee/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	feeMetrics, err := metrics.NewPrometheusCollector(registry)
	if err != nil {
		zapLogger.Fatal("Failed to register metrics", zap.Error(err))
	}

	feeService := fee.NewService(
		fee.NewFeeCalculator(),
		fee.Config{BatchMaxItems: cfg.BatchMaxItems},
		feeMetrics,
		zapLogger,
	)

	opts := routes.Options{
		FeeService:       feeService,
		Logger:           zapLogger,
		Gatherer:         registry,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		RateLimitMax:     cfg.RateLimitMax,
		RateLimitWindow:  cfg.RateLimitWindow,
		BatchMaxItems:    cfg.BatchMaxItems,
	}

	if cfg.Redis.Enabled() {
		storage := cache.NewRedisStorage(cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cache.DefaultPrefix)
		defer func() {
			if err := storage.Close(); err != nil {
				zapLogger.Warn("Failed to close Redis connection", zap.Error(err))
			}
		}()

		if err := storage.HealthCheck(context.Background()); err != nil {
			zapLogger.Warn("Redis unavailable, rate limiting may fail", zap.Error(err))
		} else {
			zapLogger.Info("Redis connected", zap.String("host", cfg.Redis.Host))
		}
		opts.LimiterStorage = storage
		opts.Redis = storage
	}

	app := fiber.New(fiber.Config{
		AppName:               "brokerfee",
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return utils.Respond(c, e.Code, fiber.Map{
					"error": fiber.Map{"code": "HTTP_ERROR", "message": e.Message},
				})
			}
			return utils.Fail(c, err)
		},
	})

	routes.SetupRoutes(app, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		zapLogger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			zapLogger.Error("Server forced to shutdown", zap.Error(err))
		}
	}()

	zapLogger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		zapLogger.Fatal("Server failed", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
