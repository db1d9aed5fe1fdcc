package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyStore_CheckAndSetExisting(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if err := client.Set(ctx, store.prefix+"key", "cached", time.Minute).Err(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "key", nil, time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}

	if !exists || string(resp) != "cached" {
		t.Fatalf("expected existing cached response, got exists=%v resp=%s", exists, resp)
	}
}

func TestIdempotencyStore_CheckAndSetClaimsNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "in-flight", nil, time.Minute)
	if err != nil || exists || resp != nil {
		t.Fatalf("unexpected result: exists=%v resp=%v err=%v", exists, resp, err)
	}

	val, err := client.Get(ctx, store.prefix+"in-flight").Result()
	if err != nil || val != pendingMarker {
		t.Fatalf("expected pending marker, got val=%s err=%v", val, err)
	}
}

func TestIdempotencyStore_CheckAndSetWithResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "done", []byte(`{"success":true}`), time.Minute)
	if err != nil || exists {
		t.Fatalf("unexpected result: exists=%v err=%v", exists, err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "done", nil, time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}
	if !exists || string(resp) != `{"success":true}` {
		t.Fatalf("expected stored response on second call, got exists=%v resp=%s", exists, resp)
	}
}

func TestIdempotencyStore_Update(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "complete", nil, time.Minute); err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}

	if err := store.Update(ctx, "complete", []byte("done"), time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	val, err := client.Get(ctx, store.prefix+"complete").Result()
	if err != nil || val != "done" {
		t.Fatalf("expected stored response, got val=%s err=%v", val, err)
	}
}
