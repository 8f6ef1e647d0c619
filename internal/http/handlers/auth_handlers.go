package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
	"github.com/Heisenberg-Vader/Auction-Website/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc     domain.AuthService
	verifySvc   domain.VerificationService
	frontendURL string
	sessionTTL  time.Duration
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, verifySvc domain.VerificationService, frontendURL string, sessionTTL time.Duration) *AuthHandlers {
	return &AuthHandlers{
		authSvc:     authSvc,
		verifySvc:   verifySvc,
		frontendURL: frontendURL,
		sessionTTL:  sessionTTL,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// Register handles account registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required!"})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.UserType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUserType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user type!"})
		case errors.Is(err, domain.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long!"})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required!"})
		case errors.Is(err, domain.ErrDuplicateAccount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists!"})
		default:
			log.Printf("registration error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error!"})
		}
		return
	}

	if result.EmailDelivered {
		c.JSON(http.StatusCreated, gin.H{"message": "User registered! Check email to verify."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered, but email verification failed. Please contact support.",
		"warning": "Email service temporarily unavailable",
	})
}

// Verify handles the one-time email-verification redemption. The response
// is always a redirect; unknown and already-used tokens look identical.
func (h *AuthHandlers) Verify(c *gin.Context) {
	token := c.Query("token")

	if _, err := h.verifySvc.Redeem(c.Request.Context(), token); err != nil {
		if !errors.Is(err, domain.ErrTokenNotFound) {
			log.Printf("verification error: %v", err)
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/verify?status=failed", h.frontendURL))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/verify?status=success", h.frontendURL))
}

// Login handles account login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required!"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, req.UserType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required!"})
		case errors.Is(err, domain.ErrAccountLocked):
			c.JSON(http.StatusLocked, gin.H{"error": "Account temporarily locked due to too many failed attempts!"})
		case errors.Is(err, domain.ErrEmailNotVerified):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please verify your email before logging in!"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials!"})
		default:
			log.Printf("login error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error!"})
		}
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful!",
		"token":     result.Token,
		"expiresIn": result.ExpiresIn,
	})
}

// Me returns the authenticated account summary
func (h *AuthHandlers) Me(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.authSvc.CurrentSession(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please login again."})
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("account fetch error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":      account.Email,
		"userType":   account.UserType,
		"verified":   account.Verified,
		"isLoggedIn": account.IsLoggedIn,
	})
}

// Logout handles account logout and clears the session cookie
func (h *AuthHandlers) Logout(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found!"})
			return
		}
		log.Printf("logout error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully!"})
}

// CsrfToken issues a fresh CSRF token as cookie and body.
func (h *AuthHandlers) CsrfToken(c *gin.Context) {
	token, err := middleware.GenerateCsrfToken(c)
	if err != nil {
		log.Printf("csrf token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csrfToken": token})
}

// setSessionCookie attaches the session token as an HTTP-only, secure,
// strict-same-site cookie.
func (h *AuthHandlers) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", true, true)
}

// clearSessionCookie expires the session cookie immediately.
func (h *AuthHandlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
}
