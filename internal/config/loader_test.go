// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		HTTPPort:            8000,
		GRPCPort:            6565,
		MetricsPort:         8080,
		LogLevel:            "info",
		PredictorBaseURL:    "http://localhost:5002",
		PredictorTimeout:    30 * time.Second,
		TrendsCacheEnabled:  true,
		TrendsCacheTTL:      time.Minute,
		TrendsMaxRetries:    3,
		HealthProbeInterval: 30 * time.Second,
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PREDICTOR_BASE_URL", "http://predictor:5002")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 8000 {
		t.Errorf("HTTPPort = %d, expected 8000", cfg.HTTPPort)
	}
	if cfg.PredictorTimeout != 30*time.Second {
		t.Errorf("PredictorTimeout = %v, expected 30s", cfg.PredictorTimeout)
	}
	if cfg.ConsoleConfigPath != "config/console.yaml" {
		t.Errorf("ConsoleConfigPath = %q, expected config/console.yaml", cfg.ConsoleConfigPath)
	}
	if cfg.RedisRetryDelay() != time.Second {
		t.Errorf("RedisRetryDelay() = %v, expected 1s", cfg.RedisRetryDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadRequiresPredictorURL(t *testing.T) {
	t.Setenv("PREDICTOR_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("Load() with empty PREDICTOR_BASE_URL should fail")
	}

	os.Unsetenv("PREDICTOR_BASE_URL")
	if _, err := Load(); err == nil {
		t.Error("Load() without PREDICTOR_BASE_URL should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.HTTPPort = 70000 }, errMsg: "HTTP_PORT"},
		{name: "port clash", mutate: func(c *Config) { c.MetricsPort = c.GRPCPort }, errMsg: "both use port"},
		{name: "relative url", mutate: func(c *Config) { c.PredictorBaseURL = "predictor:5002" }, errMsg: "PREDICTOR_BASE_URL"},
		{name: "zero timeout", mutate: func(c *Config) { c.PredictorTimeout = 0 }, errMsg: "PREDICTOR_TIMEOUT"},
		{name: "zero cache ttl", mutate: func(c *Config) { c.TrendsCacheTTL = 0 }, errMsg: "TRENDS_CACHE_TTL"},
		{name: "zero ttl with cache off", mutate: func(c *Config) { c.TrendsCacheEnabled = false; c.TrendsCacheTTL = 0 }},
		{name: "negative retries", mutate: func(c *Config) { c.TrendsMaxRetries = -1 }, errMsg: "TRENDS_MAX_RETRIES"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errMsg: "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, expected it to contain %q", err, tt.errMsg)
			}
		})
	}
}
