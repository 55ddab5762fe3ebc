package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cricket-insights-api", cfg.ServiceName)
	assert.Equal(t, ":3001", cfg.HTTPAddr)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "cricket data", cfg.SourceDir)
	assert.Empty(t, cfg.SourceManifest)
	assert.Equal(t, 3, cfg.ETLLoadWorkers)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 4, cfg.CacheWarmupWorkers)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 120, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.RateLimitTrustProxy)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		require.NoError(t, err)
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.SwaggerEnabled)
	})
}

func TestLoad_PipelineSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_DIR", "/srv/snapshot")
	t.Setenv("SOURCE_DIR", "/srv/raw")
	t.Setenv("SOURCE_MANIFEST", "/srv/raw/sources.yaml")
	t.Setenv("ETL_LOAD_WORKERS", "9")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/snapshot", cfg.DataDir)
	assert.Equal(t, "/srv/raw", cfg.SourceDir)
	assert.Equal(t, "/srv/raw/sources.yaml", cfg.SourceManifest)
	assert.Equal(t, 9, cfg.ETLLoadWorkers)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "APP_LOG_LEVEL", value: "verbose"},
		{name: "read timeout", key: "APP_READ_TIMEOUT", value: "soon"},
		{name: "load workers zero", key: "ETL_LOAD_WORKERS", value: "0"},
		{name: "load workers text", key: "ETL_LOAD_WORKERS", value: "many"},
		{name: "cache ttl zero", key: "CACHE_TTL", value: "0s"},
		{name: "warmup workers negative", key: "CACHE_WARMUP_WORKERS", value: "-1"},
		{name: "rate limit requests", key: "RATE_LIMIT_REQUESTS", value: "0"},
		{name: "rate limit window", key: "RATE_LIMIT_WINDOW", value: "-5s"},
		{name: "rate limit trust proxy", key: "RATE_LIMIT_TRUST_PROXY", value: "sometimes"},
		{name: "cache flag", key: "CACHE_ENABLED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com , ,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://token@api.uptrace.dev?grpc=4317", cfg.UptraceDSN)
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "cricket-insights-stage")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cricket-insights-stage", cfg.PyroscopeAppName)
}
