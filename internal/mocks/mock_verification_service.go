package mocks

import (
	"context"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	IssueForAccountFunc func(ctx context.Context, account *domain.Account) (bool, error)
	RedeemFunc          func(ctx context.Context, token string) (*domain.Account, error)
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

func (m *MockVerificationService) IssueForAccount(ctx context.Context, account *domain.Account) (bool, error) {
	if m.IssueForAccountFunc != nil {
		return m.IssueForAccountFunc(ctx, account)
	}
	account.VerificationToken = "mock_verification_token"
	return true, nil
}

func (m *MockVerificationService) Redeem(ctx context.Context, token string) (*domain.Account, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, token)
	}
	if token != "mock_verification_token" {
		return nil, domain.ErrTokenNotFound
	}
	return &domain.Account{ID: 1, Email: "user@example.com", Verified: true}, nil
}
