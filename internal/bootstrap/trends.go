// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"

	"github.com/AccelByte/extend-churn-console/internal/config"
	"github.com/AccelByte/extend-churn-console/pkg/trends"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// InitTrendCache connects the Redis trend cache. The cache is optional: when
// it is disabled or Redis cannot be reached, trend reports are fetched on
// every request and the returned client is nil.
func InitTrendCache(ctx context.Context, cfg *config.Config) (trends.Cache, *redis.Client) {
	if !cfg.TrendsCacheEnabled {
		logrus.Info("trend cache disabled")
		return trends.NoopCache{}, nil
	}

	client, err := trends.ConnectRedis(ctx, trends.RedisConfig{
		Host:       cfg.RedisHost,
		Port:       cfg.RedisPort,
		Password:   cfg.RedisPassword,
		DB:         cfg.RedisDB,
		MaxRetries: cfg.RedisMaxRetries,
		RetryDelay: cfg.RedisRetryDelay(),
	})
	if err != nil {
		logrus.Warnf("trend cache unavailable, serving uncached: %v", err)
		return trends.NoopCache{}, nil
	}

	logrus.Infof("trend cache enabled (ttl %v)", cfg.TrendsCacheTTL)
	return trends.NewRedisCache(client, cfg.TrendsCacheTTL), client
}

// InitTrendService creates the trend feed.
func InitTrendService(cfg *config.Config, source trends.Source, cache trends.Cache) *trends.Service {
	return trends.NewService(source, cache, trends.WithMaxRetries(cfg.TrendsMaxRetries))
}
