package mocks

import (
	"context"
	"time"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc                  func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.Account, error)
	FindByVerificationTokenFunc func(ctx context.Context, token string) (*domain.Account, error)
	FindByIDFunc                func(ctx context.Context, id uint) (*domain.Account, error)
	UpdateFieldsFunc            func(ctx context.Context, id uint, fields map[string]any) error
	RecordFailedLoginFunc       func(ctx context.Context, id uint, threshold int, lockFor time.Duration) (int, *time.Time, error)
	ResetLoginStateFunc         func(ctx context.Context, id uint) error
	RedeemVerificationTokenFunc func(ctx context.Context, token string) (*domain.Account, error)
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	account.ID = 1
	return nil
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) FindByVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	if m.FindByVerificationTokenFunc != nil {
		return m.FindByVerificationTokenFunc(ctx, token)
	}
	return nil, domain.ErrTokenNotFound
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockAccountRepository) RecordFailedLogin(ctx context.Context, id uint, threshold int, lockFor time.Duration) (int, *time.Time, error) {
	if m.RecordFailedLoginFunc != nil {
		return m.RecordFailedLoginFunc(ctx, id, threshold, lockFor)
	}
	return 1, nil, nil
}

func (m *MockAccountRepository) ResetLoginState(ctx context.Context, id uint) error {
	if m.ResetLoginStateFunc != nil {
		return m.ResetLoginStateFunc(ctx, id)
	}
	return nil
}

func (m *MockAccountRepository) RedeemVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	if m.RedeemVerificationTokenFunc != nil {
		return m.RedeemVerificationTokenFunc(ctx, token)
	}
	return nil, domain.ErrTokenNotFound
}
