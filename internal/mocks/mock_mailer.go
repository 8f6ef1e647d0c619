package mocks

import "context"

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendVerificationEmailFunc func(ctx context.Context, to, token string) error

	// Sent records every delivery attempt for assertions.
	Sent []SentMail
}

// SentMail records one delivery attempt.
type SentMail struct {
	To    string
	Token string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, to, token string) error {
	m.Sent = append(m.Sent, SentMail{To: to, Token: token})
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(ctx, to, token)
	}
	return nil
}
