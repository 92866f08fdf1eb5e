// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
// Console behavior (form defaults, upload gate, risk bands) lives in the
// YAML file at ConsoleConfigPath.
type Config struct {
	// Server configuration
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8000"`
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ChurnPredictionConsole"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Prediction service
	PredictorBaseURL string        `env:"PREDICTOR_BASE_URL,required,notEmpty"`
	PredictorTimeout time.Duration `env:"PREDICTOR_TIMEOUT" envDefault:"30s"`

	// Console configuration
	ConsoleConfigPath string `env:"CONSOLE_CONFIG_PATH" envDefault:"config/console.yaml"`

	// Redis configuration
	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	// Trend feed
	TrendsCacheEnabled  bool          `env:"TRENDS_CACHE_ENABLED" envDefault:"true"`
	TrendsCacheTTL      time.Duration `env:"TRENDS_CACHE_TTL" envDefault:"1m"`
	TrendsMaxRetries    int           `env:"TRENDS_MAX_RETRIES" envDefault:"3"`
	HealthProbeInterval time.Duration `env:"HEALTH_PROBE_INTERVAL" envDefault:"30s"`

	// Telemetry configuration
	OtelEnabled     bool   `env:"OTEL_ENABLED" envDefault:"true"`
	OtelZipkinURL   string `env:"OTEL_EXPORTER_ZIPKIN_ENDPOINT"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"churn-prediction-console"`
}

// RedisRetryDelay returns REDIS_RETRY_DELAY_MS as a duration.
func (c *Config) RedisRetryDelay() time.Duration {
	return time.Duration(c.RedisRetryDelayMs) * time.Millisecond
}
