package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func csrfTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRF())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/res", ok)
	r.POST("/res", ok)
	r.DELETE("/res", ok)
	return r
}

func TestCSRF_SafeMethodsPass(t *testing.T) {
	r := csrfTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/res", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusForbidden {
				t.Errorf("%s must not require a CSRF token", method)
			}
		})
	}
}

func TestCSRF_UnsafeMethods(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		cookie       string
		expectedCode int
	}{
		{"matching pair passes", "tok123", "tok123", http.StatusOK},
		{"missing header", "", "tok123", http.StatusForbidden},
		{"missing cookie", "tok123", "", http.StatusForbidden},
		{"mismatched pair", "tok123", "other", http.StatusForbidden},
		{"both missing", "", "", http.StatusForbidden},
	}

	r := csrfTestRouter()
	for _, tt := range tests {
		for _, method := range []string{http.MethodPost, http.MethodDelete} {
			t.Run(tt.name+"/"+method, func(t *testing.T) {
				req := httptest.NewRequest(method, "/res", nil)
				if tt.header != "" {
					req.Header.Set(CsrfHeaderName, tt.header)
				}
				if tt.cookie != "" {
					req.AddCookie(&http.Cookie{Name: CsrfCookieName, Value: tt.cookie})
				}
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				if w.Code != tt.expectedCode {
					t.Errorf("expected %d, got %d (%s)", tt.expectedCode, w.Code, w.Body.String())
				}
				if tt.expectedCode == http.StatusForbidden && w.Body.String() != `{"error":"CSRF validation failed"}` {
					t.Errorf("unexpected body %s", w.Body.String())
				}
			})
		}
	}
}

func TestGenerateCsrfToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/csrf-token", nil)

	token, err := GenerateCsrfToken(c)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(token))
	}

	res := w.Result()
	var cookie *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == CsrfCookieName {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatal("expected csrf cookie to be set")
	}
	if cookie.Value != token {
		t.Error("cookie must carry the returned token")
	}
	if cookie.HttpOnly {
		t.Error("csrf cookie must be readable by the client")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Error("expected SameSite=Strict")
	}
}
