package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type payload struct {
	Score int      `json:"score"`
	Areas []string `json:"areas"`
}

func newCache(t *testing.T) (*RedisScoreCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisScoreCache(client, ""), server
}

func TestRedisScoreCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	var miss payload
	found, err := c.Get(ctx, "dashboard:company", &miss)
	if err != nil || found {
		t.Fatalf("expected clean miss, got found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, "dashboard:company", payload{Score: 80, Areas: []string{"Vendas"}}, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var hit payload
	found, err = c.Get(ctx, "dashboard:company", &hit)
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if hit.Score != 80 || len(hit.Areas) != 1 || hit.Areas[0] != "Vendas" {
		t.Errorf("unexpected cached value: %+v", hit)
	}

	if !server.Exists(DefaultPrefix + "dashboard:company") {
		t.Error("expected key to be stored under the default prefix")
	}

	server.FastForward(2 * time.Minute)
	found, _ = c.Get(ctx, "dashboard:company", &hit)
	if found {
		t.Error("expected entry to expire after its ttl")
	}
}

func TestRedisScoreCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	keys := []string{"dashboard:company", "dashboard:areas"}
	for i := 0; i < 150; i++ {
		keys = append(keys, "dashboard:area:"+time.Duration(i).String())
	}
	for _, key := range keys {
		if err := c.Set(ctx, key, payload{Score: 1}, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := server.Set("unrelated", "keep"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range keys {
		if server.Exists(DefaultPrefix + key) {
			t.Fatalf("expected %s to be removed", key)
		}
	}
	if !server.Exists("unrelated") {
		t.Error("expected keys outside the prefix to survive")
	}
}

func TestRedisScoreCache_Generation(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	gen, err := c.Generation(ctx)
	if err != nil || gen != 0 {
		t.Fatalf("expected initial generation 0, got %d err=%v", gen, err)
	}

	for i := 0; i < 2; i++ {
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	gen, err = c.Generation(ctx)
	if err != nil || gen != 2 {
		t.Errorf("expected generation 2, got %d err=%v", gen, err)
	}
	if !server.Exists(DefaultPrefix + generationKey) {
		t.Error("expected the generation to survive invalidation")
	}
}

func TestRedisScoreCache_FailedInvalidationBlocksGeneration(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisScoreCache(client, "")

	server.Close()
	if err := c.Invalidate(ctx); err == nil {
		t.Fatal("expected invalidation to fail while the server is down")
	}

	if err := server.Restart(); err != nil {
		t.Fatalf("failed to restart redis: %v", err)
	}

	gen, err := c.Generation(ctx)
	if err != nil {
		t.Fatalf("expected the pending invalidation to be retried, got %v", err)
	}
	if gen != 1 {
		t.Errorf("expected generation 1 after the retried invalidation, got %d", gen)
	}
}

func TestRedisScoreCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	if err := server.Set(DefaultPrefix+"dashboard:areas", "{not json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var dest payload
	found, err := c.Get(ctx, "dashboard:areas", &dest)
	if err == nil || found {
		t.Errorf("expected decode error, got found=%v err=%v", found, err)
	}
}

func TestRedisScoreCache_Ping(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start redis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisScoreCache(client, "")

	if !c.Ping(context.Background()) {
		t.Fatal("expected ping to succeed")
	}

	server.Close()
	if c.Ping(context.Background()) {
		t.Error("expected ping to fail once the server is gone")
	}
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+server.Addr()+"/0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = client.Close()

	if _, err := NewRedisClient(context.Background(), "not a url"); err == nil {
		t.Error("expected invalid url to fail")
	}
}
