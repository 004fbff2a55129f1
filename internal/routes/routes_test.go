package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"brokerfee/internal/handlers"
	"brokerfee/internal/metrics"
	"brokerfee/internal/services/fee"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubPinger struct {
	err error
}

func (p stubPinger) HealthCheck(context.Context) error {
	return p.err
}

func newApp(t *testing.T, opts Options) *fiber.App {
	t.Helper()
	if opts.FeeService == nil {
		opts.FeeService = fee.NewService(fee.NewFeeCalculator(), fee.Config{}, nil, nil)
	}
	app := fiber.New()
	SetupRoutes(app, opts)
	return app
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		redis      handlers.Pinger
		wantStatus int
		wantBody   string
		wantRedis  string
	}{
		{name: "redis disabled", wantStatus: fiber.StatusOK, wantBody: "ok", wantRedis: "disabled"},
		{name: "redis connected", redis: stubPinger{}, wantStatus: fiber.StatusOK, wantBody: "ok", wantRedis: "connected"},
		{name: "redis down", redis: stubPinger{err: assert.AnError}, wantStatus: fiber.StatusServiceUnavailable, wantBody: "degraded", wantRedis: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(t, Options{Redis: tt.redis})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.Equal(t, tt.wantBody, body["status"])
			assert.Equal(t, Version, body["version"])
			assert.Equal(t, tt.wantRedis, body["services"].(map[string]interface{})["redis"])
		})
	}
}

func TestCalculateThroughRoutes(t *testing.T) {
	app := newApp(t, Options{})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/fees/calculate",
		strings.NewReader(`{"quantity": 100, "unit_price": "45.50", "other_bank_surcharge": true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "4781.59", decode(t, resp.Body)["total"])
}

func TestRateLimit(t *testing.T) {
	app := newApp(t, Options{RateLimitMax: 2, RateLimitWindow: time.Minute})

	var last int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/fees/schedule", nil), -1)
		require.NoError(t, err)
		last = resp.StatusCode
		if i < 2 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			resp.Body.Close()
			continue
		}
		body := decode(t, resp.Body)
		resp.Body.Close()
		assert.Equal(t, "RATE_LIMITED", body["error"].(map[string]interface{})["code"])
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)

	// health is outside the limited group
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector, err := metrics.NewPrometheusCollector(registry)
	require.NoError(t, err)

	app := newApp(t, Options{
		FeeService: fee.NewService(fee.NewFeeCalculator(), fee.Config{}, collector, nil),
		Gatherer:   registry,
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/fees/quote?quantity=1&unit_price=0.01", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `brokerfee_operations_total{operation="calculate",result="success"} 1`)
}

func TestMetricsEndpointDisabledWithoutGatherer(t *testing.T) {
	app := newApp(t, Options{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := newApp(t, Options{Logger: zap.New(core)})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/fees/quote?quantity=0&unit_price=1", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	entries := logs.FilterMessage("request rejected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/v1/fees/quote", fields["path"])
	assert.Equal(t, int64(fiber.StatusUnprocessableEntity), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
