// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, siteKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	// Verify connection.
	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestSiteCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := sc.Get(ctx, "test-cookie-shop")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	// Set.
	payload := []byte(`{"title":"Test Cookie Shop","slug":"test-cookie-shop"}`)
	sc.Set(ctx, "test-cookie-shop", payload)

	// Hit.
	data, ok = sc.Get(ctx, "test-cookie-shop")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(payload) {
		t.Errorf("data mismatch: got %q, want %q", data, payload)
	}
}

func TestSiteCacheTTL(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, 1*time.Second)

	ctx := context.Background()
	sc.Set(ctx, "test-ttl-shop", []byte(`{}`))

	if _, ok := sc.Get(ctx, "test-ttl-shop"); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(1500 * time.Millisecond)

	if _, ok := sc.Get(ctx, "test-ttl-shop"); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestSiteCacheDefaultTTL(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, 0)

	if sc.ttl != DefaultSiteTTL {
		t.Errorf("ttl: got %v, want %v", sc.ttl, DefaultSiteTTL)
	}
}

func TestSiteCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, 1*time.Minute)

	ctx := context.Background()
	sc.Set(ctx, "test-inv-a", []byte(`{"a":1}`))
	sc.Set(ctx, "test-inv-b", []byte(`{"b":2}`))

	sc.Invalidate(ctx, "test-inv-a")

	if _, ok := sc.Get(ctx, "test-inv-a"); ok {
		t.Error("invalidated slug still cached")
	}
	if _, ok := sc.Get(ctx, "test-inv-b"); !ok {
		t.Error("unrelated slug evicted")
	}
}

func TestSiteCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, 1*time.Minute)

	ctx := context.Background()
	for _, slug := range []string{"test-all-a", "test-all-b", "test-all-c"} {
		sc.Set(ctx, slug, []byte(`{}`))
	}

	sc.InvalidateAll(ctx)

	for _, slug := range []string{"test-all-a", "test-all-b", "test-all-c"} {
		if _, ok := sc.Get(ctx, slug); ok {
			t.Errorf("slug %q still cached after InvalidateAll", slug)
		}
	}
}
