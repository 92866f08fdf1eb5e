// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/common"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Health service names reported by the gRPC health server.
const (
	HealthServicePredictor  = "churn.predictor"
	HealthServiceTrendCache = "churn.trends_cache"
)

const probeTimeout = 5 * time.Second

// Probe checks one dependency.
type Probe struct {
	Service string
	Check   func(ctx context.Context) error
}

// GRPCServer serves the gRPC health protocol. Each probe is run on an
// interval and its service marked SERVING or NOT_SERVING.
type GRPCServer struct {
	server   *grpc.Server
	health   *health.Server
	port     int
	interval time.Duration
	probes   []Probe

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGRPCServer creates a new gRPC server instance.
func NewGRPCServer(port int, interval time.Duration, probes ...Probe) *GRPCServer {
	return &GRPCServer{
		port:     port,
		interval: interval,
		probes:   probes,
	}
}

// Setup configures the gRPC server with interceptors, health and reflection.
func (s *GRPCServer) Setup() error {
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		logging.UnaryServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}
	streamInterceptors := []grpc.StreamServerInterceptor{
		logging.StreamServerInterceptor(common.InterceptorLogger(logrus.StandardLogger())),
	}

	s.server = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.ChainStreamInterceptor(streamInterceptors...),
	)

	s.health = health.NewServer()
	for _, p := range s.probes {
		s.health.SetServingStatus(p.Service, grpc_health_v1.HealthCheckResponse_UNKNOWN)
	}

	reflection.Register(s.server)
	grpc_health_v1.RegisterHealthServer(s.server, s.health)

	logrus.Infof("gRPC reflection and health check enabled")

	return nil
}

// Start begins listening and starts the probe loop.
func (s *GRPCServer) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	go func() {
		logrus.Infof("gRPC server listening on port %d", s.port)
		if err := s.server.Serve(lis); err != nil {
			logrus.Fatalf("gRPC server failed: %v", err)
		}
	}()

	s.startProbes(ctx)
	return nil
}

func (s *GRPCServer) startProbes(ctx context.Context) {
	if len(s.probes) == 0 || s.interval <= 0 {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runProbes(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runProbes(ctx)
			}
		}
	}()
}

func (s *GRPCServer) runProbes(ctx context.Context) {
	for _, p := range s.probes {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := p.Check(probeCtx)
		cancel()

		status := grpc_health_v1.HealthCheckResponse_SERVING
		if err != nil {
			status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			logrus.Warnf("health probe %s failed: %v", p.Service, err)
		}
		s.health.SetServingStatus(p.Service, status)
	}
}

// Shutdown stops the probes, marks every service NOT_SERVING and gracefully
// stops the gRPC server.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down gRPC server...")
	if s.cancel != nil {
		s.cancel()
		s.wg.Wait()
	}
	s.health.Shutdown()
	s.server.GracefulStop()
	logrus.Info("gRPC server stopped")
	return nil
}
