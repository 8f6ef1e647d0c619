package mocks

import (
	"time"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(accountID uint, userType string, ttl time.Duration) (string, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(accountID uint, userType string, ttl time.Duration) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(accountID, userType, ttl)
	}
	return "mock_session_token", nil
}

func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	if token != "mock_session_token" {
		return nil, domain.ErrTokenInvalid
	}
	now := time.Now()
	return &domain.TokenClaims{
		AccountID: 1,
		UserType:  domain.UserTypeClient,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}
