// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package trends serves the historical prediction trend feed behind a
// short-lived cache.
package trends

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/common"
	"github.com/AccelByte/extend-churn-console/pkg/metrics"
	"github.com/AccelByte/extend-churn-console/pkg/predictor"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// Source fetches the trend report from the prediction service.
type Source interface {
	Analytics(ctx context.Context) (*predictor.TrendReport, error)
}

// Service is a read-through cache in front of a Source.
type Service struct {
	source          Source
	cache           Cache
	maxRetries      int
	initialInterval time.Duration
}

// Option configures the service.
type Option func(*Service)

// WithMaxRetries bounds the number of retries after a failed fetch.
func WithMaxRetries(n int) Option {
	return func(s *Service) { s.maxRetries = n }
}

// WithInitialInterval sets the first backoff delay.
func WithInitialInterval(d time.Duration) Option {
	return func(s *Service) { s.initialInterval = d }
}

func NewService(source Source, cache Cache, opts ...Option) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	s := &Service{
		source:          source,
		cache:           cache,
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Report returns the cached trend report, fetching and caching it on a miss.
// Cache failures are logged and bypassed.
func (s *Service) Report(ctx context.Context) (*predictor.TrendReport, error) {
	scope := common.NewScope(ctx, "trends.report")
	defer scope.Finish()

	report, ok, err := s.cache.Get(scope.Ctx)
	switch {
	case err != nil:
		metrics.TrendCacheTotal.WithLabelValues(metrics.CacheError).Inc()
		scope.Log.Warnf("trend cache read failed: %v", err)
	case ok:
		metrics.TrendCacheTotal.WithLabelValues(metrics.CacheHit).Inc()
		scope.TraceEvent("cache hit")
		return report, nil
	default:
		metrics.TrendCacheTotal.WithLabelValues(metrics.CacheMiss).Inc()
	}

	report, err = s.fetch(scope)
	if err != nil {
		scope.TraceError(err)
		return nil, err
	}

	if err := s.cache.Set(scope.Ctx, report); err != nil {
		metrics.TrendCacheTotal.WithLabelValues(metrics.CacheError).Inc()
		scope.Log.Warnf("trend cache write failed: %v", err)
	}
	return report, nil
}

func (s *Service) fetch(scope *common.Scope) (*predictor.TrendReport, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialInterval

	retries := s.maxRetries
	if retries < 0 {
		retries = 0
	}

	var report *predictor.TrendReport
	err := backoff.RetryNotify(func() error {
		r, err := s.source.Analytics(scope.Ctx)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		report = r
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), scope.Ctx), func(err error, next time.Duration) {
		scope.Log.Warnf("fetching trend report failed: %v, retrying in %v", err, next)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// retryable reports whether a failed fetch may succeed when repeated:
// unreachable service or a 5xx answer.
func retryable(err error) bool {
	var tErr *predictor.TransportError
	if !errors.As(err, &tErr) {
		return false
	}
	return tErr.StatusCode == 0 || tErr.StatusCode >= http.StatusInternalServerError
}
