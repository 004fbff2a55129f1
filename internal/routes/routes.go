// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"brokerfee/internal/handlers"
	"brokerfee/internal/middleware"
	"brokerfee/internal/services/fee"
	"brokerfee/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Options carries everything SetupRoutes wires together.
type Options struct {
	FeeService       fee.Service
	Logger           *zap.Logger
	Gatherer         prometheus.Gatherer
	Redis            handlers.Pinger // optional
	LimiterStorage   fiber.Storage   // nil keeps limiter counters in memory
	CORSAllowOrigins string
	RateLimitMax     int
	RateLimitWindow  time.Duration
	BatchMaxItems    int
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, opts Options) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RateLimitMax <= 0 {
		opts.RateLimitMax = 120
	}
	if opts.RateLimitWindow <= 0 {
		opts.RateLimitWindow = time.Minute
	}

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(opts.Logger))
	app.Use(recover.New())

	if opts.CORSAllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSAllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET,POST,OPTIONS",
		}))
	}

	healthHandler := handlers.NewHealthHandler(opts.Redis, Version)
	app.Get("/health", healthHandler.HealthCheck)

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Brokerage fee calculator",
			"version": Version,
			"docs":    "/api/v1/fees",
		})
	})

	feeHandler := handlers.NewFeeHandler(opts.FeeService, opts.BatchMaxItems)

	api := app.Group("/api/v1")
	fees := api.Group("/fees", limiter.New(limiter.Config{
		Max:        opts.RateLimitMax,
		Expiration: opts.RateLimitWindow,
		Storage:    opts.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.Respond(c, fiber.StatusTooManyRequests, fiber.Map{
				"error": fiber.Map{
					"code":    "RATE_LIMITED",
					"message": "Too many requests. Please try again later.",
				},
			})
		},
	}))

	fees.Get("/schedule", feeHandler.Schedule)
	fees.Get("/quote", feeHandler.Quote)
	fees.Post("/calculate", feeHandler.Calculate)
	fees.Post("/calculate/batch", feeHandler.CalculateBatch)
}
