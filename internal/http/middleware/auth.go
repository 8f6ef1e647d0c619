package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// AuthMW wraps the token service for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithSession returns the session-token middleware function
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return SessionMiddleware(mw.tokenSvc)
}
