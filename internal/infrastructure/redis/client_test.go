package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	ctx := context.Background()
	client, err := NewClient(ctx, "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient(context.Background(), "://bad-url"); err == nil {
		t.Fatalf("expected error for malformed URL")
	}
}

func TestNewClientFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	url := "redis://" + mr.Addr()
	mr.Close()

	if _, err := NewClient(context.Background(), url); err == nil {
		t.Fatalf("expected ping error against a closed server")
	}
}
