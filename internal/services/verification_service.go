package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
	"github.com/Heisenberg-Vader/Auction-Website/internal/sanitize"
)

// verificationTokenBytes is the entropy of a verification token (hex-encoded).
const verificationTokenBytes = 32

// VerificationServiceImpl implements domain.VerificationService
type VerificationServiceImpl struct {
	accountRepo domain.AccountRepository
	mailer      domain.Mailer
}

// NewVerificationService creates a new verification-token service
func NewVerificationService(accountRepo domain.AccountRepository, mailer domain.Mailer) domain.VerificationService {
	return &VerificationServiceImpl{
		accountRepo: accountRepo,
		mailer:      mailer,
	}
}

// IssueForAccount implements domain.VerificationService. The token is
// persisted before delivery is attempted; a send failure is reported via the
// returned flag, logged once and never retried here.
func (s *VerificationServiceImpl) IssueForAccount(ctx context.Context, account *domain.Account) (bool, error) {
	token, err := generateToken()
	if err != nil {
		return false, fmt.Errorf("failed to generate verification token: %w", err)
	}

	if err := s.accountRepo.UpdateFields(ctx, account.ID, map[string]any{"verification_token": token}); err != nil {
		return false, fmt.Errorf("failed to store verification token: %w", err)
	}
	account.VerificationToken = token

	if err := s.mailer.SendVerificationEmail(ctx, account.Email, token); err != nil {
		log.Printf("audit: %s", domain.NewAuditEvent(domain.EmailDeliveryFailedEvent, account.ID).WithEmail(account.Email).WithError(err))
		return false, nil
	}
	return true, nil
}

// Redeem implements domain.VerificationService. An unknown token and an
// already-consumed token are indistinguishable to the caller.
func (s *VerificationServiceImpl) Redeem(ctx context.Context, token string) (*domain.Account, error) {
	token = sanitize.Strip(token)
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}

	account, err := s.accountRepo.RedeemVerificationToken(ctx, token)
	if err != nil {
		return nil, err
	}

	log.Printf("audit: %s", domain.NewAuditEvent(domain.AccountVerifiedEvent, account.ID).WithEmail(account.Email))
	return account, nil
}

// generateToken returns a random opaque one-time secret.
func generateToken() (string, error) {
	bytes := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
