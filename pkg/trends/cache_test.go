// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package trends

import (
	"context"
	"testing"
	"time"

	"github.com/AccelByte/extend-churn-console/pkg/predictor"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return client, mr
}

func sampleReport() *predictor.TrendReport {
	return &predictor.TrendReport{
		DailyTrends: []predictor.DailyTrend{
			{Date: "2024-03-01", Count: 10, Churns: 3},
			{Date: "2024-03-02", Count: 8, Churns: 1},
		},
		TotalPredictions: 18,
		ChurnRate:        22.22,
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx); err != nil || ok {
		t.Fatalf("Get() on empty cache = ok %v, err %v; expected miss", ok, err)
	}

	if err := cache.Set(ctx, sampleReport()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !mr.Exists(reportKey) {
		t.Fatalf("key %s not written", reportKey)
	}
	if ttl := mr.TTL(reportKey); ttl != time.Minute {
		t.Errorf("TTL = %v, expected 1m", ttl)
	}

	got, ok, err := cache.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; expected hit", ok, err)
	}
	if got.TotalPredictions != 18 || len(got.DailyTrends) != 2 || got.DailyTrends[0].Date != "2024-03-01" {
		t.Errorf("Get() = %+v, expected the stored report", got)
	}
}

func TestRedisCacheExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCache(client, 30*time.Second)
	ctx := context.Background()

	if err := cache.Set(ctx, sampleReport()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	mr.FastForward(31 * time.Second)

	if _, ok, _ := cache.Get(ctx); ok {
		t.Error("Get() after TTL should miss")
	}
}

func TestRedisCacheIgnoresCorruptValue(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCache(client, time.Minute)

	if err := mr.Set(reportKey, "{not json"); err != nil {
		t.Fatalf("miniredis Set() error = %v", err)
	}

	if _, ok, err := cache.Get(context.Background()); ok || err != nil {
		t.Errorf("Get() = ok %v, err %v; expected a silent miss", ok, err)
	}
}

func TestRedisCacheUnavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCache(client, time.Minute)
	mr.Close()

	if _, _, err := cache.Get(context.Background()); err == nil {
		t.Error("Get() with Redis down should fail")
	}
	if err := cache.Set(context.Background(), sampleReport()); err == nil {
		t.Error("Set() with Redis down should fail")
	}
}

func TestNoopCache(t *testing.T) {
	var cache NoopCache
	if err := cache.Set(context.Background(), sampleReport()); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	if _, ok, err := cache.Get(context.Background()); ok || err != nil {
		t.Errorf("Get() = ok %v, err %v; expected miss", ok, err)
	}
}

func TestHealthChecker(t *testing.T) {
	client, mr := setupTestRedis(t)
	checker := NewHealthChecker(client)

	if !checker.IsHealthy(context.Background()) {
		t.Error("IsHealthy() = false with Redis up")
	}

	mr.Close()
	if checker.IsHealthy(context.Background()) {
		t.Error("IsHealthy() = true with Redis down")
	}
}

func TestConnectRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client, err := ConnectRedis(context.Background(), RedisConfig{
		Host:       mr.Host(),
		Port:       mr.Port(),
		MaxRetries: 2,
		RetryDelay: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("ConnectRedis() error = %v", err)
	}
	client.Close()

	addr := mr.Port()
	mr.Close()
	if _, err := ConnectRedis(context.Background(), RedisConfig{
		Host:       "127.0.0.1",
		Port:       addr,
		MaxRetries: 2,
		RetryDelay: 10 * time.Millisecond,
	}); err == nil {
		t.Error("ConnectRedis() to a closed port should fail")
	}
}
