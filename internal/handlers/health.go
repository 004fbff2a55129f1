package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is implemented by backing services that can report liveness.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	redis   Pinger
	version string
}

// NewHealthHandler builds the health handler. redis may be nil when the
// limiter runs in memory.
func NewHealthHandler(redis Pinger, version string) *HealthHandler {
	return &HealthHandler{redis: redis, version: version}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	redisStatus := "disabled"

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		redisStatus = "connected"
		if err := h.redis.HealthCheck(ctx); err != nil {
			redisStatus = "unavailable"
			status = "degraded"
		}
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"version": h.version,
		"services": fiber.Map{
			"redis": redisStatus,
		},
	})
}
