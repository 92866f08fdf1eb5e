// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPServer serves the console API.
type HTTPServer struct {
	server  *http.Server
	port    int
	handler http.Handler
	name    string
}

// NewHTTPServer creates a new console API server around handler.
func NewHTTPServer(port int, name string, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		port:    port,
		handler: handler,
		name:    name,
	}
}

// Setup wraps the API in request tracing. Write timeout is left open since
// bulk predictions can run for as long as the prediction service takes.
func (s *HTTPServer) Setup() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           otelhttp.NewHandler(s.handler, s.name),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return nil
}

// Handler returns the instrumented handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving the API.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("console API listening on port %d", s.port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("console API server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown waits for in-flight requests, including pending predictions.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down console API server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("console API server stopped")
	return nil
}
