package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "balance:grp-1", []byte("300000"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "balance:grp-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != "300000" {
		t.Fatalf("expected 300000, got %s", val)
	}
}

func TestCacheGetMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)

	val, err := cache.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected miss without error, got %v", err)
	}
	if val != nil {
		t.Fatalf("expected nil value on miss, got %s", val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "balance:grp-1", []byte("100"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "balance:grp-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	val, err := cache.Get(ctx, "balance:grp-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if val != nil {
		t.Fatalf("expected deleted key to be a miss, got %s", val)
	}
}
