package domain

import "time"

// User types allowed at registration. The tag is flat: it gates login and
// rides in the session token, nothing more.
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeAdmin  = "admin"
	UserTypeClient = "client"
)

// AllowedUserTypes lists every user type an account may register with.
var AllowedUserTypes = []string{UserTypeBuyer, UserTypeSeller, UserTypeAdmin, UserTypeClient}

// ValidUserType reports whether t is one of the allowed user types.
func ValidUserType(t string) bool {
	for _, allowed := range AllowedUserTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// Account represents a registered account in the system
type Account struct {
	ID                uint
	Email             string
	PasswordHash      string
	UserType          string
	Verified          bool
	VerificationToken string
	LoginAttempts     int
	LockUntil         *time.Time
	IsLoggedIn        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Locked reports whether the account is under a lockout at the given instant.
func (a *Account) Locked(now time.Time) bool {
	return a.LockUntil != nil && a.LockUntil.After(now)
}

// RegisterResult represents registration outcome. EmailDelivered is false
// when the verification email could not be sent; the registration itself
// still succeeded and callers must surface the warning.
type RegisterResult struct {
	Account        *Account
	EmailDelivered bool
}

// LoginResult represents a successful login
type LoginResult struct {
	Account   *Account
	Token     string
	ExpiresIn int64
}

// TokenClaims represents verified session token claims
type TokenClaims struct {
	AccountID uint   `json:"account_id"`
	UserType  string `json:"user_type"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
