package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations. Every update is
// atomic per call: callers never read-modify-write account state.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByVerificationToken(ctx context.Context, token string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)

	// UpdateFields applies the given column updates in a single statement.
	// Returns ErrAccountNotFound if no row matches.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error

	// RecordFailedLogin increments the attempt counter server-side and arms
	// the lock when the counter reaches threshold and no live lock exists.
	// Two concurrent failures must not both observe the pre-increment count.
	RecordFailedLogin(ctx context.Context, id uint, threshold int, lockFor time.Duration) (attempts int, lockUntil *time.Time, err error)

	// ResetLoginState zeroes the attempt counter, clears any lock and marks
	// the account logged in, all in one statement.
	ResetLoginState(ctx context.Context, id uint) error

	// RedeemVerificationToken marks the matching account verified and clears
	// the token in one guarded update, so a token redeems at most once.
	// Returns ErrTokenNotFound when no account holds the token.
	RedeemVerificationToken(ctx context.Context, token string) (*Account, error)
}

// AuthService defines the credential and lockout state machine
type AuthService interface {
	Register(ctx context.Context, email, password, userType string) (*RegisterResult, error)
	Login(ctx context.Context, email, password, userType string) (*LoginResult, error)
	Logout(ctx context.Context, accountID uint) error

	// CurrentSession returns the account behind a cryptographically valid
	// token, failing with ErrSessionExpired when the account logged out.
	CurrentSession(ctx context.Context, accountID uint) (*Account, error)
}

// VerificationService defines the one-time email-verification token lifecycle
type VerificationService interface {
	// IssueForAccount generates a token, stores it on the account and
	// attempts delivery. The returned flag reports delivery only; a send
	// failure is not an error and is never retried here.
	IssueForAccount(ctx context.Context, account *Account) (delivered bool, err error)

	// Redeem consumes a token exactly once, flipping the account to verified.
	Redeem(ctx context.Context, token string) (*Account, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Issue(accountID uint, userType string, ttl time.Duration) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// Mailer defines outbound email delivery. No retry guarantee is assumed.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
}

// RateLimiter tracks request counts per client identity within a window.
type RateLimiter interface {
	// Allow consumes one unit of the identity's budget under the named
	// policy, failing with ErrRateLimited once the ceiling is reached.
	// A rejected request consumes no budget.
	Allow(ctx context.Context, identity, policy string) error
}
