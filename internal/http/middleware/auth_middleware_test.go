package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
	"github.com/Heisenberg-Vader/Auction-Website/internal/mocks"
)

func sessionTestRouter(tokenSvc domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", SessionMiddleware(tokenSvc), func(c *gin.Context) {
		id, ok := AccountID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "userType": c.GetString("user_type")})
	})
	return r
}

func validTokenService(t *testing.T) *mocks.MockTokenService {
	t.Helper()
	svc := mocks.NewMockTokenService()
	svc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
		if token != "valid_token" {
			return nil, domain.ErrTokenInvalid
		}
		return &domain.TokenClaims{AccountID: 7, UserType: domain.UserTypeSeller}, nil
	}
	return svc
}

func TestSessionMiddleware_CookieToken(t *testing.T) {
	r := sessionTestRouter(validTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid_token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"id":7`) {
		t.Errorf("expected claims in context, got %s", w.Body.String())
	}
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	r := sessionTestRouter(validTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer valid_token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestSessionMiddleware_CookieWinsOverHeader(t *testing.T) {
	svc := mocks.NewMockTokenService()
	var seen string
	svc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
		seen = token
		return &domain.TokenClaims{AccountID: 1, UserType: domain.UserTypeClient}, nil
	}
	r := sessionTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie_token"})
	req.Header.Set("Authorization", "Bearer header_token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen != "cookie_token" {
		t.Errorf("expected cookie token to take precedence, verified %q", seen)
	}
}

func TestSessionMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		setupReq      func(*http.Request)
		verifyErr     error
		expectedError string
	}{
		{
			name:          "no token",
			setupReq:      func(r *http.Request) {},
			expectedError: "Unauthorized: No token provided",
		},
		{
			name: "malformed authorization header",
			setupReq: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc123")
			},
			expectedError: "Unauthorized: No token provided",
		},
		{
			name: "invalid token",
			setupReq: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bad"})
			},
			verifyErr:     domain.ErrTokenInvalid,
			expectedError: "Invalid or expired token",
		},
		{
			name: "expired token",
			setupReq: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
			},
			verifyErr:     domain.ErrTokenExpired,
			expectedError: "Token expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockTokenService()
			svc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
				return nil, tt.verifyErr
			}
			r := sessionTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setupReq(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.expectedError) {
				t.Errorf("expected %q in body, got %s", tt.expectedError, w.Body.String())
			}
		})
	}
}
