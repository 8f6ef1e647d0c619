package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// Policy names. The general policy covers all traffic; the auth policy is
// applied additionally to registration and login.
const (
	PolicyGeneral = "general"
	PolicyAuth    = "auth"
)

// Policy is a window length and a max accepted count per identity.
type Policy struct {
	Window time.Duration
	Max    int
}

// RedisLimiterImpl implements domain.RateLimiter with fixed-window counters.
type RedisLimiterImpl struct {
	client   *redis.Client
	policies map[string]Policy
}

// NewRedisLimiter creates a rate limiter with the given named policies.
func NewRedisLimiter(client *redis.Client, policies map[string]Policy) domain.RateLimiter {
	return &RedisLimiterImpl{client: client, policies: policies}
}

// allowScript checks the counter against the ceiling before incrementing, so
// a rejected request never consumes window budget. The key expires with the
// window, resetting the count.
// KEYS[1] = counter key, ARGV[1] = max count, ARGV[2] = window in ms.
var allowScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
    return -1
end
current = redis.call('INCR', KEYS[1])
if current == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return current
`)

// Allow implements domain.RateLimiter
func (l *RedisLimiterImpl) Allow(ctx context.Context, identity, policy string) error {
	p, ok := l.policies[policy]
	if !ok {
		return fmt.Errorf("unknown rate-limit policy %q", policy)
	}

	key := fmt.Sprintf("ratelimit:%s:%s", policy, identity)
	count, err := allowScript.Run(ctx, l.client, []string{key}, p.Max, p.Window.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("rate limiter check failed: %w", err)
	}
	if count < 0 {
		return domain.ErrRateLimited
	}
	return nil
}
