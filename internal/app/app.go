// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-churn-console/internal/bootstrap"
	"github.com/AccelByte/extend-churn-console/internal/config"
	"github.com/AccelByte/extend-churn-console/internal/server"
	"github.com/AccelByte/extend-churn-console/pkg/handler"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"
	"github.com/AccelByte/extend-churn-console/pkg/trends"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const metricsEndpoint = "/metrics"

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	httpServer        *server.HTTPServer
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order:
// 1. Prediction service client
// 2. Console configuration and session registry
// 3. Trend cache (Redis, optional) and trend feed
// 4. Servers (HTTP console API, gRPC health, metrics)
// 5. Telemetry (OpenTelemetry tracing)
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	// Step 1: prediction service client
	client := bootstrap.InitPredictorClient(cfg)

	// Step 2: console configuration and sessions
	consoleConfig, err := bootstrap.LoadConsoleConfig(cfg.ConsoleConfigPath)
	if err != nil {
		return nil, err
	}
	sessions := bootstrap.InitSessionManager(cfg, consoleConfig, client)

	// Step 3: trend feed
	cache, redisClient := bootstrap.InitTrendCache(ctx, cfg)
	app.redisClient = redisClient
	trendService := bootstrap.InitTrendService(cfg, client, cache)

	// Step 4: servers
	routes := handler.NewHandler(sessions, trendService).SetupRoutes()
	app.httpServer = server.NewHTTPServer(cfg.HTTPPort, cfg.ServiceName, routes)
	if err := app.httpServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, cfg.HealthProbeInterval, app.probes(client)...)
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, metricsEndpoint)
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	// Step 5: telemetry
	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.OtelServiceName, cfg.Environment, 0, cfg.OtelZipkinURL)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// probes lists the dependency checks reported through gRPC health.
func (a *App) probes(client *predictor.Client) []server.Probe {
	probes := []server.Probe{{
		Service: server.HealthServicePredictor,
		Check: func(ctx context.Context) error {
			_, err := client.Analytics(ctx)
			return err
		},
	}}

	if a.redisClient != nil {
		probes = append(probes, server.Probe{
			Service: server.HealthServiceTrendCache,
			Check:   trends.NewHealthChecker(a.redisClient).Check,
		})
	}
	return probes
}
