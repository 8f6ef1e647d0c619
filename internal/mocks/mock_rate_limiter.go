package mocks

import "context"

// MockRateLimiter implements domain.RateLimiter for testing
type MockRateLimiter struct {
	AllowFunc func(ctx context.Context, identity, policy string) error
}

// NewMockRateLimiter creates a new MockRateLimiter with default behaviors
func NewMockRateLimiter() *MockRateLimiter {
	return &MockRateLimiter{}
}

func (m *MockRateLimiter) Allow(ctx context.Context, identity, policy string) error {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, identity, policy)
	}
	return nil
}
