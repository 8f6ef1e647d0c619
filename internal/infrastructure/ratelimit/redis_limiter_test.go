package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

func setupLimiter(t *testing.T, policies map[string]Policy) (domain.RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, policies), mr
}

func TestRedisLimiter_AllowWithinBudget(t *testing.T) {
	limiter, _ := setupLimiter(t, map[string]Policy{
		PolicyAuth: {Window: time.Minute, Max: 3},
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); err != nil {
			t.Fatalf("request %d should be allowed: %v", i+1, err)
		}
	}

	if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestRedisLimiter_RejectionsConsumeNoBudget(t *testing.T) {
	limiter, mr := setupLimiter(t, map[string]Policy{
		PolicyAuth: {Window: time.Minute, Max: 2},
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); err != nil {
			t.Fatalf("request %d should be allowed: %v", i+1, err)
		}
	}
	for i := 0; i < 5; i++ {
		if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); !errors.Is(err, domain.ErrRateLimited) {
			t.Fatalf("rejection %d: expected ErrRateLimited, got %v", i+1, err)
		}
	}

	// the counter stays at the ceiling; rejected requests never incremented it
	count, err := mr.Get("ratelimit:auth:10.0.0.1")
	if err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	if count != "2" {
		t.Errorf("expected counter 2, got %s", count)
	}
}

func TestRedisLimiter_WindowResets(t *testing.T) {
	limiter, mr := setupLimiter(t, map[string]Policy{
		PolicyGeneral: {Window: time.Minute, Max: 1},
	})
	ctx := context.Background()

	if err := limiter.Allow(ctx, "10.0.0.1", PolicyGeneral); err != nil {
		t.Fatalf("first request should be allowed: %v", err)
	}
	if err := limiter.Allow(ctx, "10.0.0.1", PolicyGeneral); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	mr.FastForward(time.Minute + time.Second)

	if err := limiter.Allow(ctx, "10.0.0.1", PolicyGeneral); err != nil {
		t.Fatalf("expected fresh budget after the window, got %v", err)
	}
}

func TestRedisLimiter_IdentitiesAreIndependent(t *testing.T) {
	limiter, _ := setupLimiter(t, map[string]Policy{
		PolicyAuth: {Window: time.Minute, Max: 1},
	})
	ctx := context.Background()

	if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); err != nil {
		t.Fatalf("first identity should be allowed: %v", err)
	}
	if err := limiter.Allow(ctx, "10.0.0.2", PolicyAuth); err != nil {
		t.Fatalf("second identity must not share the first one's budget: %v", err)
	}
	if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited for the exhausted identity, got %v", err)
	}
}

func TestRedisLimiter_PoliciesAreIndependent(t *testing.T) {
	limiter, _ := setupLimiter(t, map[string]Policy{
		PolicyGeneral: {Window: time.Minute, Max: 10},
		PolicyAuth:    {Window: time.Minute, Max: 1},
	})
	ctx := context.Background()

	if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); err != nil {
		t.Fatalf("auth request should be allowed: %v", err)
	}
	if err := limiter.Allow(ctx, "10.0.0.1", PolicyAuth); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected auth policy exhausted, got %v", err)
	}
	// the general policy keeps its own counter
	if err := limiter.Allow(ctx, "10.0.0.1", PolicyGeneral); err != nil {
		t.Fatalf("general policy must be unaffected: %v", err)
	}
}

func TestRedisLimiter_UnknownPolicy(t *testing.T) {
	limiter, _ := setupLimiter(t, map[string]Policy{})

	err := limiter.Allow(context.Background(), "10.0.0.1", "nope")
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if errors.Is(err, domain.ErrRateLimited) {
		t.Fatal("configuration error must not masquerade as a rate limit")
	}
}
