// Integration tests for the Valkey session store. Skipped when no
// Valkey/Redis instance is reachable.
package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("VALKEY_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("skipping integration test: valkey not reachable: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}

func TestSessionRoundTrip(t *testing.T) {
	s := NewStore(testClient(t))
	ctx := context.Background()

	token, err := s.Create(ctx, &Data{
		UserID:      "abc123",
		Email:       "ben@ornek.dev",
		DisplayName: "Ben",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { _ = s.Delete(context.Background(), token) })

	got, err := s.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for a fresh token")
	}
	if got.Email != "ben@ornek.dev" || got.UserID != "abc123" {
		t.Errorf("payload mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set on create")
	}
}

func TestSessionUnknownToken(t *testing.T) {
	s := NewStore(testClient(t))

	got, err := s.Get(context.Background(), "no-such-token")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get for unknown token: got %+v, want nil", got)
	}
}

func TestSessionDelete(t *testing.T) {
	s := NewStore(testClient(t))
	ctx := context.Background()

	token, err := s.Create(ctx, &Data{Email: "ben@ornek.dev"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := s.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("session survived delete: %+v", got)
	}

	// Deleting again is not an error.
	if err := s.Delete(ctx, token); err != nil {
		t.Errorf("Delete on unknown token: %v", err)
	}
}
