package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// CSRF cookie/header names and token lifetime (seconds).
const (
	CsrfCookieName = "csrfToken"
	CsrfHeaderName = "X-CSRF-Token"
	CsrfTokenTTL   = 60 * 60
)

// GenerateCsrfToken creates a 256-bit random token and sets it as a
// readable, strict-same-site cookie. The client must echo it back in the
// CSRF header; the cookie alone proves nothing, since a cross-site request
// would carry it too.
func GenerateCsrfToken(c *gin.Context) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating csrf token: %w", err)
	}
	token := hex.EncodeToString(bytes)

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CsrfCookieName, token, CsrfTokenTTL, "/", "", true, false)
	return token, nil
}

// CSRF validates the double-submit token pair on state-changing requests.
// Safe methods pass untouched; everything else requires a byte-equal
// header+cookie pair, compared in constant time.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checkCsrf(c); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "CSRF validation failed"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func checkCsrf(c *gin.Context) error {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return nil
	}

	headerToken := c.GetHeader(CsrfHeaderName)
	cookieToken, err := c.Cookie(CsrfCookieName)
	if headerToken == "" || err != nil || cookieToken == "" ||
		subtle.ConstantTimeCompare([]byte(headerToken), []byte(cookieToken)) != 1 {
		return domain.ErrCsrfMismatch
	}
	return nil
}
