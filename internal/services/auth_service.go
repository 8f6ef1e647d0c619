package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
	"github.com/Heisenberg-Vader/Auction-Website/internal/sanitize"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// AuthConfig holds the credential-policy knobs for the auth service.
type AuthConfig struct {
	SessionTTL       time.Duration
	LockoutThreshold int
	LockoutDuration  time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	verifySvc   domain.VerificationService
	config      AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	verifySvc domain.VerificationService,
	config AuthConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		verifySvc:   verifySvc,
		config:      config,
	}
}

// normalizeEmail sanitizes and lowercases an email for use as a lookup key.
func normalizeEmail(email string) string {
	return strings.ToLower(sanitize.Strip(email))
}

// Register implements domain.AuthService. A verification-email delivery
// failure does not fail the registration; it is reported on the result.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, userType string) (*domain.RegisterResult, error) {
	email = normalizeEmail(email)
	userType = sanitize.Strip(userType)

	if email == "" || password == "" || userType == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidUserType(userType) {
		return nil, domain.ErrInvalidUserType
	}
	if len(password) < MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	if _, err := s.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateAccount
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		UserType:     userType,
		Verified:     false,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	delivered, err := s.verifySvc.IssueForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification token: %w", err)
	}

	log.Printf("audit: %s", domain.NewAuditEvent(domain.AccountRegisteredEvent, account.ID).WithEmail(account.Email))
	return &domain.RegisterResult{Account: account, EmailDelivered: delivered}, nil
}

// Login implements domain.AuthService. Checks run in a fixed order:
// lock, verified, password, user type. An unknown email, a wrong password
// and a user-type mismatch all surface as ErrInvalidCredentials so the
// response never reveals whether the account exists or what type it is.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, userType string) (*domain.LoginResult, error) {
	email = normalizeEmail(email)
	userType = sanitize.Strip(userType)

	if email == "" || password == "" || userType == "" {
		return nil, domain.ErrMissingFields
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if account.Locked(time.Now()) {
		return nil, domain.ErrAccountLocked
	}

	if !account.Verified {
		return nil, domain.ErrEmailNotVerified
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		attempts, lockUntil, err := s.accountRepo.RecordFailedLogin(ctx, account.ID, s.config.LockoutThreshold, s.config.LockoutDuration)
		if err != nil {
			return nil, fmt.Errorf("failed to record login attempt: %w", err)
		}
		log.Printf("audit: %s", domain.NewAuditEvent(domain.LoginFailedEvent, account.ID).WithError(domain.ErrInvalidCredentials))
		if lockUntil != nil && attempts >= s.config.LockoutThreshold {
			log.Printf("audit: %s", domain.NewAuditEvent(domain.AccountLockedEvent, account.ID))
		}
		return nil, domain.ErrInvalidCredentials
	}

	if userType != account.UserType {
		// Internally distinct from a wrong password, externally identical.
		log.Printf("audit: %s", domain.NewAuditEvent(domain.LoginFailedEvent, account.ID).WithError(fmt.Errorf("user type mismatch")))
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.accountRepo.ResetLoginState(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to reset login state: %w", err)
	}
	account.LoginAttempts = 0
	account.LockUntil = nil
	account.IsLoggedIn = true

	token, err := s.tokenSvc.Issue(account.ID, account.UserType, s.config.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	log.Printf("audit: %s", domain.NewAuditEvent(domain.LoginEvent, account.ID).WithEmail(account.Email))
	return &domain.LoginResult{
		Account:   account,
		Token:     token,
		ExpiresIn: int64(s.config.SessionTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, accountID uint) error {
	if err := s.accountRepo.UpdateFields(ctx, accountID, map[string]any{"is_logged_in": false}); err != nil {
		return err
	}
	log.Printf("audit: %s", domain.NewAuditEvent(domain.LogoutEvent, accountID))
	return nil
}

// CurrentSession implements domain.AuthService. Token validity and logical
// session validity are independent: a valid token for a logged-out account
// does not authorize access.
func (s *AuthServiceImpl) CurrentSession(ctx context.Context, accountID uint) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsLoggedIn {
		return nil, domain.ErrSessionExpired
	}
	return account, nil
}
