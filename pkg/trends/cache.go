// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	// KeyPrefix is the prefix for all trend cache keys
	KeyPrefix = "churn_console:trends"
	// DefaultTTL is how long a fetched report is served from cache
	DefaultTTL = time.Minute

	reportKey = KeyPrefix + ":report"
)

// Cache holds the most recent trend report.
type Cache interface {
	// Get returns the cached report, or false when there is none.
	Get(ctx context.Context) (*predictor.TrendReport, bool, error)
	Set(ctx context.Context, report *predictor.TrendReport) error
}

// RedisCache stores the report as JSON under a single expiring key.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) (*predictor.TrendReport, bool, error) {
	data, err := c.client.Get(ctx, reportKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get trend report: %w", err)
	}

	var report predictor.TrendReport
	if err := json.Unmarshal(data, &report); err != nil {
		logrus.Warnf("dropping unreadable cached trend report: %v", err)
		return nil, false, nil
	}
	return &report, true, nil
}

func (c *RedisCache) Set(ctx context.Context, report *predictor.TrendReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal trend report: %w", err)
	}
	if err := c.client.Set(ctx, reportKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set trend report: %w", err)
	}
	return nil
}

// NoopCache never holds anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context) (*predictor.TrendReport, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(context.Context, *predictor.TrendReport) error {
	return nil
}
