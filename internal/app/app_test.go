package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loveacts-service/internal/config"
	"loveacts-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Service: config.ServiceConfig{Name: "loveacts-service", Version: "2.0.0"},
		HTTP:    config.HTTPConfig{Port: 0, AllowedOrigins: []string{"*"}},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		JWT:     config.JWTConfig{Secret: "test-secret"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		RateLimit: config.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 100,
			Burst:             100,
			CleanupInterval:   time.Minute,
		},
	}
}

func TestNewWithMemoryStorage(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logger.Discard())
	require.NoError(t, err)
	defer a.Close()

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Driver = "sqlite"

	_, err := New(context.Background(), cfg, logger.Discard())
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestRunNotifierRequiresKafkaAndPostgres(t *testing.T) {
	cfg := memoryConfig()
	assert.ErrorContains(t, RunNotifier(context.Background(), cfg, logger.Discard()), "kafka")

	cfg.Kafka.Enabled = true
	assert.ErrorContains(t, RunNotifier(context.Background(), cfg, logger.Discard()), "storage driver")
}

func TestRunStopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logger.Discard())
	require.NoError(t, err)
	a.server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Run(ctx))
}
