// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads configuration from environment variables.
// It attempts to load from .env file first (for local development),
// then parses environment variables into the Config struct.
func Load() (*Config, error) {
	// In production (Docker/K8s), environment variables are injected directly
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file found or error loading it: %v (this is normal in production)", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Validate performs custom validation on the configuration.
func (c *Config) Validate() error {
	ports := []struct {
		name  string
		value int
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"GRPC_PORT", c.GRPCPort},
		{"METRICS_PORT", c.MetricsPort},
	}
	seen := make(map[int]string, len(ports))
	for _, p := range ports {
		if p.value < 1 || p.value > 65535 {
			return fmt.Errorf("invalid %s: %d (must be 1-65535)", p.name, p.value)
		}
		if other, ok := seen[p.value]; ok {
			return fmt.Errorf("%s and %s both use port %d", other, p.name, p.value)
		}
		seen[p.value] = p.name
	}

	u, err := url.Parse(c.PredictorBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid PREDICTOR_BASE_URL: %q (must be an http or https URL)", c.PredictorBaseURL)
	}

	if c.PredictorTimeout <= 0 {
		return fmt.Errorf("invalid PREDICTOR_TIMEOUT: %v (must be positive)", c.PredictorTimeout)
	}

	if c.TrendsCacheEnabled && c.TrendsCacheTTL <= 0 {
		return fmt.Errorf("invalid TRENDS_CACHE_TTL: %v (must be positive)", c.TrendsCacheTTL)
	}

	if c.TrendsMaxRetries < 0 {
		return fmt.Errorf("invalid TRENDS_MAX_RETRIES: %d (must be non-negative)", c.TrendsMaxRetries)
	}

	if c.HealthProbeInterval <= 0 {
		return fmt.Errorf("invalid HEALTH_PROBE_INTERVAL: %v (must be positive)", c.HealthProbeInterval)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}

	return nil
}
