package domain

import (
	"errors"
	"fmt"
)

// Validation errors. The specific reasons wrap ErrValidation so handlers can
// match the family or the exact cause.
var (
	ErrValidation       = errors.New("validation failed")
	ErrMissingFields    = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrInvalidUserType  = fmt.Errorf("%w: invalid user type", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
)

// Authentication errors
var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAccountNotFound    = errors.New("account not found")
)

// Session errors
var (
	ErrSessionExpired = errors.New("session has expired")
)

// Token errors
var (
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenNotFound = errors.New("verification token not found")
)

// Transport-policy errors
var (
	ErrCsrfMismatch = errors.New("csrf validation failed")
	ErrRateLimited  = errors.New("rate limit exceeded")
)
