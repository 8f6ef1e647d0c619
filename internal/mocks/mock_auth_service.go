package mocks

import (
	"context"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, email, password, userType string) (*domain.RegisterResult, error)
	LoginFunc          func(ctx context.Context, email, password, userType string) (*domain.LoginResult, error)
	LogoutFunc         func(ctx context.Context, accountID uint) error
	CurrentSessionFunc func(ctx context.Context, accountID uint) (*domain.Account, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, email, password, userType string) (*domain.RegisterResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, userType)
	}
	return &domain.RegisterResult{
		Account: &domain.Account{
			ID:       1,
			Email:    email,
			UserType: userType,
		},
		EmailDelivered: true,
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password, userType string) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, userType)
	}
	return &domain.LoginResult{
		Account: &domain.Account{
			ID:         1,
			Email:      email,
			UserType:   userType,
			Verified:   true,
			IsLoggedIn: true,
		},
		Token:     "mock_session_token",
		ExpiresIn: 3600,
	}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, accountID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accountID)
	}
	return nil
}

func (m *MockAuthService) CurrentSession(ctx context.Context, accountID uint) (*domain.Account, error) {
	if m.CurrentSessionFunc != nil {
		return m.CurrentSessionFunc(ctx, accountID)
	}
	return &domain.Account{
		ID:         accountID,
		Email:      "user@example.com",
		UserType:   domain.UserTypeClient,
		Verified:   true,
		IsLoggedIn: true,
	}, nil
}
